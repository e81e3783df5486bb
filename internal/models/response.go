package models

// MessageResponse is returned for client errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for server errors. Error carries a stable code,
// never the raw error text.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ProfileResponse wraps a profile returned from a write.
type ProfileResponse struct {
	Message string   `json:"message"`
	Profile *Profile `json:"profile"`
}

const (
	ErrCodeInternal      = "internal_error"
	ErrCodeUploadFailed  = "upload_failed"
	ErrCodeIdentityCheck = "identity_check_failed"
)

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{Message: message, Error: code}
}

func NewProfileResponse(message string, p *Profile) ProfileResponse {
	return ProfileResponse{Message: message, Profile: p}
}
