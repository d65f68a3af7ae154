package worker

import (
	"context"
	"log/slog"
	"time"

	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/usecase/commands"
)

// ReminderDriver invokes the reminder processor on a fixed interval. Ticks
// are serialized: the loop runs one pass to completion before it can receive
// the next tick, so two passes never overlap and the processor needs no
// cross-invocation locking.
type ReminderDriver struct {
	processor commands.ReminderCommands
	interval  time.Duration
	clock     clock.Clock
	logger    *slog.Logger
}

func NewReminderDriver(
	processor commands.ReminderCommands,
	interval time.Duration,
	clk clock.Clock,
	logger *slog.Logger,
) *ReminderDriver {
	return &ReminderDriver{
		processor: processor,
		interval:  interval,
		clock:     clk,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled. A tick that arrives while a pass is
// still running is dropped by the ticker, not queued.
func (d *ReminderDriver) Run(ctx context.Context) {
	d.logger.Info("reminder driver starting", "interval", d.interval)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("reminder driver stopping")
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

func (d *ReminderDriver) tick(ctx context.Context) {
	result, err := d.processor.ProcessDueReminders(ctx, d.clock.Now())
	if err != nil {
		d.logger.Error("reminder pass failed", "error", err)
		return
	}

	if result.Selected > 0 {
		d.logger.Info("reminder pass finished",
			"selected", result.Selected,
			"sent", result.Sent,
			"failed", result.Failed,
			"orphaned", result.Orphaned)
	}
}
