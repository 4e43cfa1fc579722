package autherrors

import (
	"net/http"

	"github.com/DevHanzala/TMS-PORTAL/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidStakeholder = apperror.New(
		apperror.CodeInvalidInput,
		"Stakeholder must be either hr or employee",
		http.StatusBadRequest,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrHRPasswordNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"HR login is not configured",
		http.StatusServiceUnavailable,
	)
)
