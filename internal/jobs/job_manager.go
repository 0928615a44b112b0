package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
}

type namedJob struct {
	name string
	job  Job
}

// PurgeConfig configures the terminal order purge. An empty schedule
// disables the job.
type PurgeConfig struct {
	Schedule  string
	Retention time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(purge purgeHandler, cfg PurgeConfig, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if cfg.Schedule != "" {
		jm.Add("terminal order purge", NewTerminalOrderPurgeJob(purge, cfg.Schedule, cfg.Retention, logger))
	}
	return jm
}

// Add registers a job to be started by StartAll.
func (jm *JobManager) Add(name string, job Job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: job})
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}

// Len returns the number of registered jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
