// Package jobs provides scheduled background tasks for the shipment
// tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleShipmentWatchdogJob - Runs hourly to flag undelivered shipments
// whose tracking ledgers have gone silent for longer than the configured
// threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleShipmentsHandler, 48*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The watchdog only observes and logs; it never mutates shipments. Scan
// failures are logged and retried on the next tick.
package jobs
