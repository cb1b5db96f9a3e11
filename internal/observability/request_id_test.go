package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bmi-calculator/internal/testutil"

	"github.com/google/uuid"
)

func TestNewRequestIDReturnsUUID(t *testing.T) {
	id := NewRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
	if other := NewRequestID(); other == id {
		t.Fatalf("expected distinct ids, got %q twice", id)
	}
}

func TestRequestIDContextRoundTrip(t *testing.T) {
	want := uuid.New().String()

	got := RequestIDFromContext(ContextWithRequestID(context.Background(), want))
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRequestIDFromContextWhenMissingOrWrongType(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		if got := RequestIDFromContext(context.Background()); got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RequestIDKey, 42)
		if got := RequestIDFromContext(ctx); got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})
}

func TestRequestIDMiddlewareIncomingHeader(t *testing.T) {
	supplied := uuid.New().String()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "caller uuid is propagated", incoming: supplied, keep: true},
		{name: "malformed id is replaced", incoming: "not-a-uuid; drop table"},
		{name: "oversized id is replaced", incoming: supplied + supplied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxRequestID string
			h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxRequestID = RequestIDFromContext(r.Context())
			}))

			r := httptest.NewRequest(http.MethodGet, "/calculator/history", nil)
			r.Header.Set(RequestIDHeader, tt.incoming)
			w := testutil.ExecuteRequest(r, h)

			got := w.Result().Header.Get(RequestIDHeader)
			if got != ctxRequestID {
				t.Fatalf("expected header %q to match context %q", got, ctxRequestID)
			}

			if tt.keep {
				if got != tt.incoming {
					t.Fatalf("expected incoming request id %q, got %q", tt.incoming, got)
				}
				return
			}

			if got == tt.incoming {
				t.Fatalf("expected %q to be replaced", tt.incoming)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected a generated UUID, got %q: %v", got, err)
			}
		})
	}
}
