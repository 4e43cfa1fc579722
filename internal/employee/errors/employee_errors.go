package employeeerrors

import (
	"net/http"

	"github.com/DevHanzala/TMS-PORTAL/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrBadgeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID is already registered",
		http.StatusConflict,
	)
	ErrCNICAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"CNIC is already registered",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
