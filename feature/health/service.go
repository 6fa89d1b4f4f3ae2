package health

import (
	"time"
)

// StatusOK is the only status reported while the process is serving.
const StatusOK = "OK"

// Status is the health payload.
type Status struct {
	Status      string  `json:"status" example:"OK"`
	Timestamp   string  `json:"timestamp" example:"2024-01-01T12:00:00Z"`
	Uptime      float64 `json:"uptime" example:"42.5"`
	Version     string  `json:"version" example:"1.2.0"`
	Environment string  `json:"environment" example:"development"`
}

// Service computes health status.
type Service struct {
	version     string
	environment string
	started     time.Time
	now         func() time.Time
}

// NewService creates a health service whose uptime starts now.
func NewService(version, environment string) *Service {
	return &Service{
		version:     version,
		environment: environment,
		started:     time.Now(),
		now:         time.Now,
	}
}

// Check returns the current health status.
func (s *Service) Check() Status {
	now := s.now()
	return Status{
		Status:      StatusOK,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Uptime:      now.Sub(s.started).Seconds(),
		Version:     s.version,
		Environment: s.environment,
	}
}
