package errors

import (
	"net/http"

	"hrboard/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Session token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session token has expired",
		http.StatusUnauthorized,
	)

	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session has expired, please sign in again",
		http.StatusUnauthorized,
	)
)
