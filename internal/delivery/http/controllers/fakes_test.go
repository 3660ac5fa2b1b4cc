package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"evently/internal/delivery/http/middleware"
	"evently/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerResult *domain.Registration
	registerErr    error
	lastInput      domain.RegistrationInput

	updateResult *domain.RegistrationWithEvent
	updateErr    error
	lastUpdateID string
	lastStatus   domain.RegistrationStatus

	listByEventResult []*domain.Registration
	listByEventErr    error
	lastEventID       string

	attendeeResult []*domain.RegistrationWithEvent
	attendeeErr    error
	lastIdentifier string
	lastByPhone    bool
}

func (f *fakeRegistrationService) Register(_ context.Context, in domain.RegistrationInput) (*domain.Registration, error) {
	f.lastInput = in
	return f.registerResult, f.registerErr
}

func (f *fakeRegistrationService) UpdateStatus(_ context.Context, id string, status domain.RegistrationStatus) (*domain.RegistrationWithEvent, error) {
	f.lastUpdateID, f.lastStatus = id, status
	return f.updateResult, f.updateErr
}

func (f *fakeRegistrationService) ListByEvent(_ context.Context, eventID string, status domain.RegistrationStatus) ([]*domain.Registration, error) {
	f.lastEventID, f.lastStatus = eventID, status
	return f.listByEventResult, f.listByEventErr
}

func (f *fakeRegistrationService) ListByAttendee(_ context.Context, identifier string, byPhone bool) ([]*domain.RegistrationWithEvent, error) {
	f.lastIdentifier, f.lastByPhone = identifier, byPhone
	return f.attendeeResult, f.attendeeErr
}

func (f *fakeRegistrationService) MatchByEmail(_ context.Context, email string) ([]*domain.RegistrationWithEvent, error) {
	f.lastIdentifier = email
	return f.attendeeResult, f.attendeeErr
}

type fakeAnalyticsService struct {
	result *domain.Analytics
	err    error
}

func (f *fakeAnalyticsService) GetAnalytics(context.Context) (*domain.Analytics, error) {
	return f.result, f.err
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events     []*domain.Event
	total      int
	listErr    error
	lastFilter domain.EventFilter
	lastPage   domain.PaginationParams

	event  *domain.Event
	getErr error
	lastID string

	categories []string

	createErr   error
	lastCreated *domain.Event
	updateErr   error
	lastUpdated *domain.Event
	deleteErr   error
}

func (f *fakeEventService) ListEvents(_ context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastFilter, f.lastPage = filter, page
	return f.events, f.total, f.listErr
}

func (f *fakeEventService) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	return f.event, f.getErr
}

func (f *fakeEventService) ListCategories(context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeEventService) CreateEvent(_ context.Context, event *domain.Event) error {
	f.lastCreated = event
	if f.createErr == nil {
		event.ID = "11111111-1111-1111-1111-111111111111"
	}
	return f.createErr
}

func (f *fakeEventService) UpdateEvent(_ context.Context, event *domain.Event) (*domain.Event, error) {
	f.lastUpdated = event
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return event, nil
}

func (f *fakeEventService) DeleteEvent(_ context.Context, id string) error {
	f.lastID = id
	return f.deleteErr
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	user  *domain.User
	token string
	err   error

	lastUserID  string
	lastProfile domain.ProfileUpdate
	lastNewPass string
}

func (f *fakeAuthService) Register(_ context.Context, _, _, _, _ string) (*domain.User, string, error) {
	return f.user, f.token, f.err
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	return f.user, f.token, f.err
}

func (f *fakeAuthService) GetUser(_ context.Context, id string) (*domain.User, error) {
	f.lastUserID = id
	return f.user, f.err
}

func (f *fakeAuthService) UpdateProfile(_ context.Context, id string, update domain.ProfileUpdate) (*domain.User, error) {
	f.lastUserID, f.lastProfile = id, update
	return f.user, f.err
}

func (f *fakeAuthService) ChangePassword(_ context.Context, id, _, newPassword string) error {
	f.lastUserID, f.lastNewPass = id, newPassword
	return f.err
}

// newRequest builds a request with an optional JSON body and authenticated identity.
func newRequest(t *testing.T, method, target string, body any, identity *domain.Identity) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if identity != nil {
		req = req.WithContext(middleware.SetIdentity(req.Context(), identity))
	}
	return req
}

// serve routes req through a mux with pattern so path values are populated.
func serve(pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}
