package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	defectiveReportJob *DefectiveReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(defectiveReportJob *DefectiveReportJob) *JobManager {
	return &JobManager{
		defectiveReportJob: defectiveReportJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.defectiveReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start defective report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.defectiveReportJob.Stop()
}
