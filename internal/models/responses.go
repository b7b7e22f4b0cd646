package models

type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status,omitempty"`
}
