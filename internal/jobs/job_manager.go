// Package jobs provides the scheduled background tasks of the rental
// service, built on github.com/robfig/cron/v3. The only job today is the
// overdue order scan; JobManager exists so the composition root has one
// start/stop switch when more jobs arrive.
package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueOrdersJob *OverdueOrdersJob
}

// NewJobManager creates a manager over the given jobs.
func NewJobManager(overdueOrdersJob *OverdueOrdersJob) *JobManager {
	return &JobManager{
		overdueOrdersJob: overdueOrdersJob,
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}

	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
}
