// Package jobs provides scheduled background tasks for the packaging system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the warehouse.
//
// # Available Jobs
//
// 1. DefectiveReportJob - Renders the defective orders report for the trailing
// thirty days and writes the PDF into the configured output directory.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required jobs
//	jobManager := jobs.NewJobManager(defectiveReportJob)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report job takes a six field cron expression with seconds, configured
// through REPORT_CRON_SCHEDULE. The default runs once a day at 06:00.
//
// # Error Handling
//
// A report window without defective orders is an expected scenario and is
// logged at info level; every other failure is logged as an error.
package jobs
