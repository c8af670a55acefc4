package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/apiclient"
)

// Monitor periodically probes backend connectivity so the surface layer can
// show or hide the demo-mode banner without probing on every screen.
type Monitor struct {
	client   *apiclient.Client
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}

	mu     sync.RWMutex
	latest apiclient.ConnectivityStatus
}

func NewMonitor(client *apiclient.Client, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Monitor{
		client:   client,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the probe loop. The first probe runs immediately.
func (m *Monitor) Start(ctx context.Context) {
	m.logger.Info("Starting connectivity monitor",
		zap.String("backend_url", m.client.BaseURL()),
		zap.Duration("interval", m.interval),
	)
	go m.run(ctx)
}

// Stop terminates the probe loop.
func (m *Monitor) Stop() {
	m.logger.Info("Stopping connectivity monitor")
	close(m.stopChan)
}

// Status returns the latest connectivity snapshot.
func (m *Monitor) Status() apiclient.ConnectivityStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}

func (m *Monitor) run(ctx context.Context) {
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.probe(ctx)
		case <-m.stopChan:
			m.logger.Info("Connectivity monitor stopped")
			return
		case <-ctx.Done():
			m.logger.Info("Connectivity monitor cancelled")
			return
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	status := m.client.Connectivity(ctx)

	m.mu.Lock()
	previous := m.latest
	m.latest = status
	m.mu.Unlock()

	// Only log transitions, the steady state is noise.
	if status.Connected != previous.Connected || previous.Timestamp.IsZero() {
		if status.Connected {
			m.logger.Info("Backend reachable",
				zap.String("health_status", status.HealthStatus),
				zap.Int("centers_count", status.CentersCount),
			)
		} else {
			m.logger.Warn("Backend unreachable, client runs in demo mode",
				zap.String("error", status.Error),
			)
		}
	}
}
