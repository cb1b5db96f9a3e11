package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header carries the session identifier in both directions.
const Header = "X-Session-ID"

type contextKey string

const IDKey contextKey = "session_id"

func NewID() string {
	return uuid.New().String()
}

func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, IDKey, id)
}

func IDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(IDKey).(string)
	if !ok {
		return ""
	}
	return id
}

// Middleware resolves the caller's session from the X-Session-ID header.
// A missing or malformed id starts a new session. The effective id is always
// echoed back so the client can keep using it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = NewID()
		}

		w.Header().Set(Header, id)

		next.ServeHTTP(w, r.WithContext(ContextWithID(r.Context(), id)))
	})
}
