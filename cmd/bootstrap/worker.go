package bootstrap

import (
	"context"
	"log/slog"

	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReminderDriver,
	),
	fx.Invoke(runReminderDriver),
)

func NewReminderDriver(
	processor commands.ReminderCommands,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) *worker.ReminderDriver {
	return worker.NewReminderDriver(processor, cfg.Reminder.PollInterval, clk, logger)
}

func runReminderDriver(lc fx.Lifecycle, driver *worker.ReminderDriver) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				driver.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
