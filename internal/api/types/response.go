// internal/api/types/response.go
package types

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FlashResponse carries a human-readable confirmation message.
type FlashResponse struct {
	Message string `json:"message"`
}
