package code

// codeMessageMap maps error codes to default messages
var codeMessageMap = map[int]string{
	ErrSuccess:          "success",
	ErrUnknown:          "Internal server error",
	ErrBind:             "Invalid request body",
	ErrValidation:       "Validation failed",
	ErrNotAuthenticated: "Not authenticated",

	ErrProjectNotFound: "Project not found",

	ErrAgentNotFound:      "Agent not found with this phone number",
	ErrAgentAlreadyExists: "Phone number already registered",
	ErrAgentNotApproved:   "Agent account is not approved yet",
	ErrAgentCredentials:   "Invalid phone number or password",

	ErrOTPInvalid: "Invalid or expired OTP",

	ErrInquiryNotFound: "Inquiry not found",

	ErrEmailNotFound: "Email not found",

	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",

	ErrTooManyRequests: "Too many requests, please try again later",
}

// codeStatusMap maps error codes to HTTP status codes
var codeStatusMap = map[int]int{
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrNotAuthenticated: StatusUnauthorized,

	ErrProjectNotFound: StatusNotFound,

	ErrAgentNotFound:      StatusNotFound,
	ErrAgentAlreadyExists: StatusBadRequest,
	ErrAgentNotApproved:   StatusForbidden,
	ErrAgentCredentials:   StatusUnauthorized,

	ErrOTPInvalid: StatusUnauthorized,

	ErrInquiryNotFound: StatusNotFound,

	ErrEmailNotFound: StatusNotFound,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	ErrTooManyRequests: StatusTooManyRequests,
}

// GetMessage returns the default message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
