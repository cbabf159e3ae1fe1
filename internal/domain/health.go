package domain

import (
	"context"
	"time"
)

// HealthReport describes database connectivity and row counts.
type HealthReport struct {
	Database   string    `json:"database"`
	Connected  bool      `json:"connected"`
	Employers  int       `json:"employers"`
	Candidates int       `json:"candidates"`
	Interviews int       `json:"interviews"`
	Timestamp  time.Time `json:"timestamp"`
}

// HealthService checks the storage backend.
type HealthService interface {
	Check(ctx context.Context) (*HealthReport, error)
}
