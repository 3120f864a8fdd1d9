package dto

// HealthResponse reports probe status. Details carries per-dependency
// state (currently just the database) on the readiness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}
