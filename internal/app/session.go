package app

import (
	"log/slog"
	"net/http"

	"github.com/cinetix/booking-engine/internal/domain"
)

type sessionKey string

// Session fields written by the external identity service; the booking
// engine only ever reads them.
const (
	SessionKeyUserId   = sessionKey("userID")
	SessionKeyUserRole = sessionKey("userRole")
)

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const (
	contextKeyPrincipal = contextKey("principal")
	contextKeyLogger    = contextKey("logger")
)

func (app *Application) contextGetPrincipal(r *http.Request) domain.Principal {
	principal, ok := r.Context().Value(contextKeyPrincipal).(domain.Principal)
	if !ok {
		panic("missing principal from context")
	}

	return principal
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(contextKeyLogger).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
