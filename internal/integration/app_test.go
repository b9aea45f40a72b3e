package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/booking-engine/internal/app"
	"github.com/cinetix/booking-engine/internal/domain"
	"github.com/cinetix/booking-engine/internal/notifier"
	"github.com/cinetix/booking-engine/internal/repository"
	appvalidator "github.com/cinetix/booking-engine/internal/validator"
)

type TestApp struct {
	App      *app.Application
	DB       *pgxpool.Pool
	Sessions *scs.SessionManager
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		notifier.NewRedisNotifier(redisClient, cfg.EventChannel, logger),
		repository.NewPostgresHallRepository(db),
		repository.NewPostgresSeatRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresShowtimeRepository(db),
		repository.NewPostgresReservationRepository(db),
	)

	return &TestApp{
		App:      application,
		DB:       db,
		Sessions: sessionManager,
	}, nil
}

// authenticatedCookies mints a session the way the external identity service
// would, then returns the cookie a browser would carry.
func (ta *TestApp) authenticatedCookies(t testing.TB, userID int, role domain.Role) []http.Cookie {
	ctx, err := ta.Sessions.Load(context.Background(), "")
	require.NoError(t, err)

	ta.Sessions.Put(ctx, app.SessionKeyUserId.String(), userID)
	ta.Sessions.Put(ctx, app.SessionKeyUserRole.String(), string(role))

	token, _, err := ta.Sessions.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: "session_id", Value: token}}
}
