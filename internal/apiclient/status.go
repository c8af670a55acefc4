package apiclient

import (
	"context"
	"time"
)

// HealthReport is the backend's /health response.
type HealthReport struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// ConnectivityStatus is a point-in-time view of backend reachability, used
// by the surface layer to decide whether to show the demo-mode banner.
type ConnectivityStatus struct {
	Connected    bool      `json:"connected"`
	BackendURL   string    `json:"backend_url"`
	HealthStatus string    `json:"health_status"`
	Database     string    `json:"database"`
	CentersCount int       `json:"centers_count"`
	Timestamp    time.Time `json:"timestamp"`
	Error        string    `json:"error,omitempty"`
}

// Health probes the backend. On failure it returns a synthetic unhealthy
// report alongside the error so callers always have something to display.
func (c *Client) Health(ctx context.Context) (HealthReport, error) {
	var report HealthReport
	if err := c.get(ctx, "/health", &report); err != nil {
		return HealthReport{Status: "unhealthy", Database: "disconnected"}, err
	}
	return report, nil
}

// Connectivity combines a health probe with a center listing. Connected is
// true only when the center list came from the live backend.
func (c *Client) Connectivity(ctx context.Context) ConnectivityStatus {
	status := ConnectivityStatus{
		BackendURL: c.baseURL,
		Timestamp:  c.now(),
	}

	health, healthErr := c.Health(ctx)
	status.HealthStatus = health.Status
	status.Database = health.Database

	centers, err := c.ListCenters(ctx)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.CentersCount = len(centers.Data)

	if centers.Fallback {
		status.Error = centers.Cause.Error()
		return status
	}
	if healthErr != nil {
		status.Error = healthErr.Error()
		return status
	}

	status.Connected = true
	return status
}
