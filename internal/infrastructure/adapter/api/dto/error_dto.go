package dto

import (
	domainerr "github.com/amirhossein-jamali/game-booking/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code      int    `json:"code"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// NewErrorResponse builds the response body for err. Unexpected errors are
// reported without their details.
func NewErrorResponse(err error) ErrorResponse {
	code := domainerr.CodeOf(err)
	message := "Internal server error"
	if code != domainerr.Internal {
		message = err.Error()
	}
	return ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		ErrorCode: string(code),
		Message:   message,
	}
}

// NewErrorResponseWithMessage builds an error body with a custom message
func NewErrorResponseWithMessage(err error, message string) ErrorResponse {
	return ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		ErrorCode: string(domainerr.CodeOf(err)),
		Message:   message,
	}
}
