package jobs

import (
	"context"

	"depot/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StateReportJob logs the rendered depot state on a cron schedule.
type StateReportJob struct {
	handler  queries.GetDepotStateQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewStateReportJob creates the job. An empty schedule disables it.
func NewStateReportJob(handler queries.GetDepotStateQueryHandler, schedule string, logger *zap.Logger) *StateReportJob {
	return &StateReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "state_report_job")),
	}
}

// Enabled reports whether the job has a schedule.
func (j *StateReportJob) Enabled() bool {
	return j.schedule != ""
}

// Start registers the report with the scheduler and starts it.
func (j *StateReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("State report job started", zap.String("schedule", j.schedule))
	return nil
}

// Run logs the current state once.
func (j *StateReportJob) Run(ctx context.Context) {
	state, err := j.handler.Handle(ctx, queries.NewGetDepotStateQuery())
	if err != nil {
		j.logger.Error("State report failed", zap.Error(err))
		return
	}

	j.logger.Info("Depot state", zap.String("state", state))
}

// Stop stops scheduling.
func (j *StateReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("State report job stopped")
}
