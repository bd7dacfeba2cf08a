package dto

// HealthResponse reports storage connectivity and migration state
type HealthResponse struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// LoadingResponse is returned by profile reads while the image migration runs
type LoadingResponse struct {
	Status string `json:"status"`
}
