package filestoreerrors

import (
	"net/http"

	"github.com/DevHanzala/TMS-PORTAL/internal/shared/apperror"
)

var (
	ErrFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance file not found",
		http.StatusNotFound,
	)
	ErrInvalidFileID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid file ID",
		http.StatusBadRequest,
	)
	ErrEmptyFile = apperror.New(
		apperror.CodeInvalidInput,
		"Uploaded file is empty",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported file format, expected .csv, .txt or .xlsx",
		http.StatusBadRequest,
	)
)
