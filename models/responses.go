package models

import "time"

// Third-party status values reported by the health endpoint.
const (
	StatusOK        = "OK"
	StatusHealthy   = "Healthy"
	StatusUnhealthy = "Unhealthy"
)

// HealthStatus is the body of the health endpoint. The endpoint itself always
// answers 200; upstream reachability is reported in ThirdPartyStatus.
type HealthStatus struct {
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	ThirdPartyStatus string    `json:"third_party_status"`
}

// VersionInfo is the body of the version endpoint.
type VersionInfo struct {
	AppVersion string    `json:"app_version"`
	APIVersion string    `json:"api_version"`
	BuildTime  string    `json:"build_time"`
	Timestamp  time.Time `json:"timestamp"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string `json:"message"`
}
