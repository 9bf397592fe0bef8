package apperrors

import (
	"fmt"
	"net/http"
)

// ErrNotFound converts a repository "not found" into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrOAuthAccount rejects password operations on accounts created through a provider.
func ErrOAuthAccount(provider string) *AppError {
	return New(
		CodeOAuthAccount,
		"auth",
		fmt.Sprintf("Cannot change password for accounts registered with %s.", provider),
		http.StatusForbidden,
	)
}

// --- Auth ---

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password. Please check your credentials.",
	http.StatusUnauthorized,
)

var ErrWrongCurrentPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Current password is incorrect",
	http.StatusUnauthorized,
)

var ErrWrongSecurityAnswer = New(
	CodeInvalidCredentials,
	"auth",
	"Security answer is incorrect",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrRateLimited = New(
	CodeRateLimited,
	"request",
	"Rate limit exceeded. Try again later.",
	http.StatusTooManyRequests,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Content ---

var ErrSearchQueryRequired = New(
	CodeValidationFailed,
	"search",
	"Search query is required",
	http.StatusBadRequest,
)
