package models

// APIError represents a standardized error response for the API.
// Message is always present so clients can rely on {"message": "..."}.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Domain errors
	ErrCafeNotFound     = "CAFE_NOT_FOUND"
	ErrPizzaNotFound    = "PIZZA_NOT_FOUND"
	ErrIDNotFound       = "ID_NOT_FOUND"
	ErrEmptyCafeList    = "EMPTY_CAFE_LIST"
	ErrEmptyPizzaList   = "EMPTY_PIZZA_LIST"
	ErrInvalidArgument  = "INVALID_ARGUMENT"
	ErrUsernameNotFound = "USERNAME_NOT_FOUND"
	ErrClientNotFound   = "CLIENT_NOT_FOUND"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]string) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// MessageResponse is the body of successful operations that return no entity
type MessageResponse struct {
	Message string `json:"message"`
}
