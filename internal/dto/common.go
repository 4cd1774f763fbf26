package dto

// ErrorResponse represents an error response.
// Detail carries the human readable reason shown by the web client.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// HealthResponse is returned by the health, liveness and readiness probes
type HealthResponse struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}
