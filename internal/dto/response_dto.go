package dto

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
