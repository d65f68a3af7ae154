package components

import (
	"meeting-scheduler/internal/infra/db"
	"meeting-scheduler/internal/infra/readstore"
	repo_impl "meeting-scheduler/internal/infra/repository"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewReminderRepository,
			fx.As(new(commands.ReminderRepository)),
		),
		fx.Annotate(
			repo_impl.NewMeetingDirectory,
			fx.As(new(commands.MeetingDirectory)),
		),
		fx.Annotate(
			repo_impl.NewActionItemDirectory,
			fx.As(new(commands.ActionItemDirectory)),
		),
		fx.Annotate(
			repo_impl.NewOutboxSender,
			fx.As(new(commands.ReminderSender)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewReminderReadStore,
			fx.As(new(queries.ReminderReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
