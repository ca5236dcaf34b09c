package middleware

import (
	"context"
	"net/http"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"

	"github.com/google/uuid"
)

type ctxKey string

const actorKey ctxKey = "actor"

// Identity reads the acting identity the gateway resolved from the caller's
// token. The core trusts these headers per the identity collaborator
// contract; it never sees credentials itself.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get("X-Actor-Id"))
		role := domain.Role(r.Header.Get("X-Actor-Role"))
		if err == nil && role.Valid() {
			ctx := context.WithValue(r.Context(), actorKey, domain.Actor{ID: id, Role: role})
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireIdentity rejects requests whose identity the gateway did not
// populate.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActorFrom(r.Context()).Known() {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActorFrom returns the acting identity, zero-valued when anonymous.
func ActorFrom(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorKey).(domain.Actor)
	return actor
}

// WithActor is a test helper for handler tests that bypass the middleware.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
