// Package models defines request and response types for the HydraSIG REST API.
// All types are JSON-serializable and include validation tags where appropriate.
package models

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
	// Field names the presentation field that failed to parse, when known.
	Field string `json:"field,omitempty"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}
