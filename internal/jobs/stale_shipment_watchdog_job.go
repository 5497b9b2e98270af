package jobs

import (
	"context"
	"log/slog"
	"time"

	"citrustrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleShipmentsFinder locates undelivered shipments without recent
// tracking activity.
type StaleShipmentsFinder interface {
	Handle(ctx context.Context, query queries.GetStaleShipmentsQuery) ([]queries.StaleShipmentResponse, error)
}

// StaleShipmentWatchdogJob scans the shipment registry every hour for
// undelivered shipments whose ledgers have gone silent and reports them
// through the log, so operations can chase the carrier before the cold
// chain is at risk.
type StaleShipmentWatchdogJob struct {
	finder    StaleShipmentsFinder
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleShipmentWatchdogJob creates the watchdog. The threshold is how
// long a ledger may stay silent before its shipment is flagged.
func NewStaleShipmentWatchdogJob(
	finder StaleShipmentsFinder,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleShipmentWatchdogJob {
	return &StaleShipmentWatchdogJob{
		finder:    finder,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_shipment_watchdog"),
	}
}

// Start schedules the watchdog to run at the top of every hour.
func (j *StaleShipmentWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale shipment watchdog started",
		"threshold", j.threshold.String())
	return nil
}

// Run executes one watchdog scan. Exposed so the scheduler callback and
// tests share the same path.
func (j *StaleShipmentWatchdogJob) Run() {
	ctx := context.Background()

	query, err := queries.NewGetStaleShipmentsQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale shipment watchdog misconfigured", "error", err)
		return
	}

	stale, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale shipment scan failed", "error", err)
		return
	}

	if len(stale) == 0 {
		j.logger.DebugContext(ctx, "No stale shipments found")
		return
	}

	for _, sh := range stale {
		j.logger.WarnContext(ctx, "Shipment has gone silent",
			"shipmentId", sh.ID.String(),
			"trackingNumber", sh.TrackingNumber,
			"status", sh.Status,
			"lastActivityAt", sh.LastActivityAt,
		)
	}
}

// Stop stops the watchdog.
func (j *StaleShipmentWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale shipment watchdog stopped")
}
