package jobs

import (
	"context"

	"depot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DeliveryRoundJob runs a delivery round on a cron schedule. Every courier
// with a vehicle and queued orders delivers them, and each run is logged.
type DeliveryRoundJob struct {
	handler  commands.RunDeliveryRoundCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewDeliveryRoundJob creates the job. schedule is a six field cron
// expression (seconds first); an empty schedule disables the job.
func NewDeliveryRoundJob(
	handler commands.RunDeliveryRoundCommandHandler,
	schedule string,
	logger *zap.Logger,
) *DeliveryRoundJob {
	return &DeliveryRoundJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "delivery_round_job")),
	}
}

// Enabled reports whether the job has a schedule.
func (j *DeliveryRoundJob) Enabled() bool {
	return j.schedule != ""
}

// Start registers the round with the scheduler and starts it.
func (j *DeliveryRoundJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Delivery round job started", zap.String("schedule", j.schedule))
	return nil
}

// Run executes a single round.
func (j *DeliveryRoundJob) Run(ctx context.Context) {
	reports, err := j.handler.Handle(ctx, commands.NewRunDeliveryRoundCommand())

	for _, r := range reports {
		j.logger.Info("Deliveries executed",
			zap.Int("courier", r.CourierPosition),
			zap.String("name", r.CourierName),
			zap.Int("delivered", r.Delivered),
			zap.Int("rejected", r.Rejected),
			zap.Strings("messages", r.Messages),
		)
	}

	if err != nil {
		j.logger.Error("Delivery round failed", zap.Error(err))
		return
	}

	if len(reports) == 0 {
		j.logger.Debug("No courier had orders to deliver")
	}
}

// Stop stops scheduling and waits for a running round to finish.
func (j *DeliveryRoundJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Delivery round job stopped")
}
