package jobs

import (
	"context"
	"fmt"
	"time"

	"pharmacy/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// NotificationDispatcher drains one batch of the outbox.
type NotificationDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchNotificationsCommand) (commands.DispatchResult, error)
}

// NotificationDispatchJob sends queued notifications on a cron schedule.
// cron.SkipIfStillRunning keeps a slow batch from overlapping the next tick.
type NotificationDispatchJob struct {
	handler   NotificationDispatcher
	batchSize int
	timeout   time.Duration
	schedule  string
	counter   *prometheus.CounterVec
	cron      *cron.Cron
	logger    zerolog.Logger
}

type NotificationDispatchConfig struct {
	// Schedule is a six-field cron spec, seconds first.
	Schedule  string
	BatchSize int
	// RunTimeout bounds a whole batch.
	RunTimeout time.Duration
}

// NewNotificationDispatchJob creates the job. counter may be nil; when set
// it is incremented with result="sent" and result="failed".
func NewNotificationDispatchJob(
	handler NotificationDispatcher,
	cfg NotificationDispatchConfig,
	counter *prometheus.CounterVec,
	logger zerolog.Logger,
) *NotificationDispatchJob {
	logger = logger.With().Str("component", "notification_dispatch_job").Logger()
	return &NotificationDispatchJob{
		handler:   handler,
		batchSize: cfg.BatchSize,
		timeout:   cfg.RunTimeout,
		schedule:  cfg.Schedule,
		counter:   counter,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start registers the batch on the schedule and starts the scheduler.
func (j *NotificationDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.RunOnce); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("notification dispatch job started")
	return nil
}

// RunOnce dispatches one batch.
func (j *NotificationDispatchJob) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	ctx = j.logger.WithContext(ctx)

	cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.Error().Err(err).Msg("invalid dispatch batch size")
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error().Err(err).Msg("notification dispatch failed")
		return
	}

	if j.counter != nil {
		j.counter.WithLabelValues("sent").Add(float64(result.Sent))
		j.counter.WithLabelValues("failed").Add(float64(result.Failed))
	}
	if result.Claimed > 0 {
		j.logger.Debug().
			Int("claimed", result.Claimed).
			Int("sent", result.Sent).
			Int("failed", result.Failed).
			Msg("notification batch dispatched")
	}
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("notification dispatch job stopped")
}
