// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Drains the notification outbox every five seconds
// and publishes pending notifications to the message broker.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A publish failure aborts the current batch and is logged; the unsent
// notifications remain in the outbox and are retried on the next tick.
// Notifications are only marked sent after the broker accepted them, so a
// crash between publish and mark can produce duplicate deliveries. Consumers
// deduplicate on the notification ID.
package jobs
