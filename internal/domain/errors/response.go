package errors

// ErrorInfo contains detailed error information for the response envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_ALREADY_EXISTS"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified API response envelope shared by the error
// middleware and the response helpers.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
