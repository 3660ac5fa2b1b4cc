package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryhttp "evently/internal/delivery/http"
	"evently/internal/delivery/http/controllers"
	"evently/internal/delivery/http/helpers"
	"evently/internal/domain"
)

type tokenTable map[string]*domain.Identity

func (t tokenTable) Verify(token string) (*domain.Identity, error) {
	if id, ok := t[token]; ok {
		return id, nil
	}
	return nil, errors.New("unknown token")
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type stubEventService struct {
	domain.EventService
	deleted []string
}

func (s *stubEventService) ListEvents(context.Context, domain.EventFilter, domain.PaginationParams) ([]*domain.Event, int, error) {
	return []*domain.Event{}, 0, nil
}

func (s *stubEventService) DeleteEvent(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestRouter(events domain.EventService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := tokenTable{
		"admin-token": {UserID: "a1", Role: domain.RoleAdmin},
		"user-token":  {UserID: "u1", Role: domain.RoleUser},
	}
	return deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:         controllers.NewAuthController(logger, nil),
		Event:        controllers.NewEventController(logger, events),
		Registration: controllers.NewRegistrationController(logger, nil, nil),
		Health:       controllers.NewHealthController(logger, okPinger{}),
	}, deliveryhttp.RouterConfig{
		AllowedOrigins: []string{"http://localhost:5173"},
		Verifier:       verifier,
		Logger:         logger,
	})
}

func TestRouter_AdminRoutes(t *testing.T) {
	const path = "/api/events/6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f"
	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantCode   string
	}{
		{"anonymous", "", http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
		{"bad token", "forged", http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
		{"regular user", "user-token", http.StatusForbidden, helpers.ErrCodeForbidden},
		{"admin", "admin-token", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &stubEventService{}
			req := httptest.NewRequest(http.MethodDelete, path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()
			newTestRouter(events).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode == "" {
				assert.Len(t, events.deleted, 1)
				return
			}
			assert.Empty(t, events.deleted)
			var body helpers.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(&stubEventService{})

	t.Run("event listing needs no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/events", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), `"OK"`))
	})

	t.Run("verify requires token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/registrations", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
