package domain

import "errors"

// Authentication pipeline outcomes. All four map to the same 401 response.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrUnknownSubject    = errors.New("unknown subject")
	ErrDeactivated       = errors.New("account is deactivated")
)

var (
	ErrInsufficientRole = errors.New("insufficient role")
	ErrForbidden        = errors.New("access forbidden")
	ErrConfiguration    = errors.New("configuration fault")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrDuplicate         = errors.New("duplicate field value")
	ErrProductNotFound   = errors.New("product not found")
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrReportNotFound    = errors.New("esg report not found")
	ErrRewardNotFound    = errors.New("reward not found")
	ErrAIUnavailable     = errors.New("ai service is not configured")
	ErrAIEmptyCompletion = errors.New("ai service returned no content")
)
