package payrollerrors

import (
	"net/http"

	"github.com/DevHanzala/TMS-PORTAL/internal/shared/apperror"
)

var (
	ErrNoMonthSelected = apperror.New(
		apperror.CodeInvalidInput,
		"No month selected for payroll generation",
		http.StatusBadRequest,
	)
	ErrInvalidAllowedHours = apperror.New(
		apperror.CodeInvalidInput,
		"Allowed hours per day must be greater than zero",
		http.StatusBadRequest,
	)
	ErrNoFileSelected = apperror.New(
		apperror.CodeInvalidInput,
		"No attendance file selected",
		http.StatusBadRequest,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"No payroll run found for this file and month",
		http.StatusNotFound,
	)
)
