package jobs

import (
	"fmt"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// Schedules holds the cron expression of each job. An empty expression
// disables the corresponding job.
type Schedules struct {
	DeliveryRound string
	StateReport   string
}

type scheduledJob interface {
	Enabled() bool
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryRoundJob *DeliveryRoundJob
	stateReportJob   *StateReportJob
	started          []scheduledJob
	logger           *zap.Logger
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	runDeliveryRoundHandler commands.RunDeliveryRoundCommandHandler,
	getDepotStateHandler queries.GetDepotStateQueryHandler,
	schedules Schedules,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		deliveryRoundJob: NewDeliveryRoundJob(runDeliveryRoundHandler, schedules.DeliveryRound, logger),
		stateReportJob:   NewStateReportJob(getDepotStateHandler, schedules.StateReport, logger),
		logger:           logger,
	}
}

// StartAll starts every enabled job. If one fails, the jobs already started
// are stopped and the error is returned.
func (jm *JobManager) StartAll() error {
	jobs := []struct {
		name string
		job  scheduledJob
	}{
		{name: "delivery round", job: jm.deliveryRoundJob},
		{name: "state report", job: jm.stateReportJob},
	}

	for _, j := range jobs {
		if !j.job.Enabled() {
			jm.logger.Info("Job disabled", zap.String("job", j.name))
			continue
		}

		if err := j.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = append(jm.started, j.job)
	}

	return nil
}

// StopAll stops the running jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}

// Running returns how many jobs are currently scheduled.
func (jm *JobManager) Running() int {
	return len(jm.started)
}
