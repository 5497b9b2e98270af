package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleShipmentWatchdog *StaleShipmentWatchdogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleShipmentsFinder StaleShipmentsFinder,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleShipmentWatchdog: NewStaleShipmentWatchdogJob(staleShipmentsFinder, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleShipmentWatchdog.Start(); err != nil {
		return fmt.Errorf("failed to start stale shipment watchdog: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleShipmentWatchdog.Stop()
}
