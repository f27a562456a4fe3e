package domain

import (
	"fmt"
	"time"
)

// APIError represents a standardized error response
type APIError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes for different failure scenarios
const (
	ErrInvalidInput    = "INVALID_INPUT"
	ErrUnknownPatient  = "UNKNOWN_PATIENT"
	ErrUnknownBiopsy   = "UNKNOWN_BIOPSY"
	ErrUnknownROI      = "UNKNOWN_ROI"
	ErrUnknownModality = "UNKNOWN_MODALITY"
	ErrImageDecode     = "IMAGE_DECODE_ERROR"
	ErrUploadTooLarge  = "UPLOAD_TOO_LARGE"
	ErrRequestTimeout  = "REQUEST_TIMEOUT"
	ErrRateLimit       = "RATE_LIMIT_EXCEEDED"
	ErrInternalServer  = "INTERNAL_SERVER_ERROR"
)

// NewAPIError creates a new APIError with timestamp
func NewAPIError(code, message, details, requestID string) *APIError {
	return &APIError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}
