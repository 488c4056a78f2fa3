package errors

import (
	"net/http"

	"hrboard/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Employee id must be a positive number",
		http.StatusBadRequest,
	)

	ErrDirectoryUnavailable = apperror.New(
		apperror.CodeUpstreamError,
		"Employee directory is unavailable",
		http.StatusBadGateway,
	)
)
