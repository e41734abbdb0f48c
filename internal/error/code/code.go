package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrNotAuthenticated - 401: no admin session.
	ErrNotAuthenticated
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Project error codes (101xxx).
const (
	// ErrProjectNotFound - 404: project not found.
	ErrProjectNotFound int = iota + 101000
)

// Marketing agent error codes (102xxx).
const (
	// ErrAgentNotFound - 404: marketing agent not found.
	ErrAgentNotFound int = iota + 102000
	// ErrAgentAlreadyExists - 400: phone already registered.
	ErrAgentAlreadyExists
	// ErrAgentNotApproved - 403: agent account not approved.
	ErrAgentNotApproved
	// ErrAgentCredentials - 401: invalid phone or password.
	ErrAgentCredentials
)

// OTP error codes (103xxx).
const (
	// ErrOTPInvalid - 401: invalid or expired OTP.
	ErrOTPInvalid int = iota + 103000
)

// Inquiry error codes (104xxx).
const (
	// ErrInquiryNotFound - 404: inquiry not found.
	ErrInquiryNotFound int = iota + 104000
)

// Email error codes (105xxx).
const (
	// ErrEmailNotFound - 404: email not found.
	ErrEmailNotFound int = iota + 105000
)

// Database error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
