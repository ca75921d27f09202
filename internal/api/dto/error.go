package dto

// Error represents a standard error response
type Error struct {
	Error string `json:"error" example:"error message"`
}
