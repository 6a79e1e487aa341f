package routes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/AnshRaj112/guildhall-backend/internal/handlers"
	"github.com/AnshRaj112/guildhall-backend/internal/middleware"
)

type upStore struct{}

func (upStore) Ping(context.Context) error { return nil }

func TestOperationalRoutesBypassAPIMiddlewares(t *testing.T) {
	c := qt.New(t)

	// A limiter with no tokens rejects every request it sees.
	closed := middleware.NewIPRateLimiter(rate.Limit(1), 0, "slow down")
	r := chi.NewRouter()
	h := handlers.New(nil, upStore{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	SetupRoutes(r, h, prometheus.NewRegistry(), closed.Handler(nil))

	serve := func(target string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.RemoteAddr = "10.0.0.1:4000"
		r.ServeHTTP(rec, req)
		return rec.Code
	}
	for i := 0; i < 3; i++ {
		c.Assert(serve("/health"), qt.Equals, http.StatusOK)
		c.Assert(serve("/metrics"), qt.Equals, http.StatusOK)
	}
	c.Assert(serve("/groups"), qt.Equals, http.StatusTooManyRequests)
	c.Assert(serve("/users/1"), qt.Equals, http.StatusTooManyRequests)
	c.Assert(serve("/profils"), qt.Equals, http.StatusTooManyRequests)
}
