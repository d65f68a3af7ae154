package bootstrap

import (
	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewWorkingHours,
		func(cfg config.Config) config.ReminderConfig { return cfg.Reminder },
	),
)

func NewWorkingHours(cfg config.Config) (booking.WorkingHours, error) {
	start, err := booking.ParseClock(cfg.Scheduling.WorkDayStart)
	if err != nil {
		return booking.WorkingHours{}, err
	}
	end, err := booking.ParseClock(cfg.Scheduling.WorkDayEnd)
	if err != nil {
		return booking.WorkingHours{}, err
	}
	return booking.WorkingHours{Start: start, End: end}, nil
}
