package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"evently/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory RegistrationRepository and EventRepository.
// WithTx holds the store lock for the whole callback and restores a snapshot on error.
type memStore struct {
	mu     sync.Mutex
	events map[string]*domain.Event
	regs   map[string]*domain.Registration
	order  []string
	locks  []string

	lastFilter domain.EventFilter
	failList   error
}

func newMemStore() *memStore {
	return &memStore{
		events: make(map[string]*domain.Event),
		regs:   make(map[string]*domain.Registration),
	}
}

func (m *memStore) addEvent(title, category string, max int, price float64) *domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &domain.Event{
		ID:           uuid.NewString(),
		Title:        title,
		Date:         "2026-11-02",
		Time:         "09:00",
		Location:     "Berlin",
		MaxAttendees: max,
		Price:        price,
		Category:     category,
		Tags:         []string{},
	}
	m.events[e.ID] = e
	cp := *e
	return &cp
}

func (m *memStore) event(id string) domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.events[id]
}

func (m *memStore) registration(id string) domain.Registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.regs[id]
}

func (m *memStore) withEvent(r *domain.Registration) *domain.RegistrationWithEvent {
	cp := *r
	rwe := &domain.RegistrationWithEvent{Registration: &cp}
	if e, ok := m.events[r.EventID]; ok {
		ecp := *e
		rwe.Event = &ecp
	}
	return rwe
}

// newestFirst returns registrations matching keep in reverse insertion order.
func (m *memStore) newestFirst(keep func(*domain.Registration) bool) []*domain.Registration {
	var out []*domain.Registration
	for i := len(m.order) - 1; i >= 0; i-- {
		if r := m.regs[m.order[i]]; r != nil && keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// RegistrationRepository

func (m *memStore) WithTx(ctx context.Context, fn func(tx domain.RegistrationTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make(map[string]*domain.Event, len(m.events))
	for k, v := range m.events {
		cp := *v
		events[k] = &cp
	}
	regs := make(map[string]*domain.Registration, len(m.regs))
	for k, v := range m.regs {
		cp := *v
		regs[k] = &cp
	}
	order := append([]string(nil), m.order...)

	if err := fn(&memTx{m: m}); err != nil {
		m.events, m.regs, m.order = events, regs, order
		return err
	}
	return nil
}

func (m *memStore) GetWithEvent(ctx context.Context, id string) (*domain.RegistrationWithEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.regs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m.withEvent(r), nil
}

func (m *memStore) ListByEvent(ctx context.Context, eventID string, status domain.RegistrationStatus) ([]*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.Registration{}
	for _, r := range m.newestFirst(func(r *domain.Registration) bool {
		return r.EventID == eventID && (status == "" || r.Status == status)
	}) {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) listWithEvents(keep func(*domain.Registration) bool) []*domain.RegistrationWithEvent {
	out := []*domain.RegistrationWithEvent{}
	for _, r := range m.newestFirst(keep) {
		out = append(out, m.withEvent(r))
	}
	return out
}

func (m *memStore) ListByEmail(ctx context.Context, email string) ([]*domain.RegistrationWithEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listWithEvents(func(r *domain.Registration) bool { return r.AttendeeEmail == email }), nil
}

func (m *memStore) ListByPhone(ctx context.Context, phone string) ([]*domain.RegistrationWithEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listWithEvents(func(r *domain.Registration) bool { return r.AttendeePhone == phone }), nil
}

func (m *memStore) ListActiveWithEvents(ctx context.Context) ([]*domain.RegistrationWithEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList != nil {
		return nil, m.failList
	}
	return m.listWithEvents(func(r *domain.Registration) bool { return r.Status.Active() }), nil
}

// EventRepository

func (m *memStore) Create(ctx context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.NewString()
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memStore) Update(ctx context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.events[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	e.CurrentAttendees = cur.CurrentAttendees
	e.CreatedAt = cur.CreatedAt
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	for rid, r := range m.regs {
		if r.EventID == id {
			delete(m.regs, rid)
		}
	}
	return nil
}

func (m *memStore) sortedEvents() []*domain.Event {
	out := make([]*domain.Event, 0, len(m.events))
	for _, e := range m.events {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Title < out[j].Title
	})
	return out
}

func (m *memStore) List(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter
	var matched []*domain.Event
	for _, e := range m.sortedEvents() {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, e)
	}
	total := len(matched)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)
	return matched[start:end], total, nil
}

func (m *memStore) ListAll(ctx context.Context) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedEvents(), nil
}

func (m *memStore) ListCategories(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, e := range m.events {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

// memTx runs with memStore.mu held.
type memTx struct {
	m *memStore
}

func (t *memTx) LockEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	t.m.locks = append(t.m.locks, "event")
	e, ok := t.m.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (t *memTx) FindDuplicate(ctx context.Context, eventID, email, phone string) (*domain.Registration, error) {
	for _, r := range t.m.regs {
		if r.EventID == eventID && (r.AttendeeEmail == email || r.AttendeePhone == phone) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (t *memTx) CountActive(ctx context.Context, eventID string) (int, error) {
	n := 0
	for _, r := range t.m.regs {
		if r.EventID == eventID && r.Status.Active() {
			n++
		}
	}
	return n, nil
}

func (t *memTx) Create(ctx context.Context, reg *domain.Registration) error {
	if _, err := t.FindDuplicate(ctx, reg.EventID, reg.AttendeeEmail, reg.AttendeePhone); err == nil {
		return domain.ErrDuplicateRegistration
	}
	reg.ID = uuid.NewString()
	cp := *reg
	t.m.regs[reg.ID] = &cp
	t.m.order = append(t.m.order, reg.ID)
	return nil
}

func (t *memTx) AdjustAttendees(ctx context.Context, eventID string, delta int) error {
	e, ok := t.m.events[eventID]
	if !ok {
		return domain.ErrNotFound
	}
	n := max(e.CurrentAttendees+delta, 0)
	if n > e.MaxAttendees {
		return domain.ErrCapacityExceeded
	}
	e.CurrentAttendees = n
	return nil
}

func (t *memTx) RegistrationEventID(ctx context.Context, id string) (string, error) {
	r, ok := t.m.regs[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return r.EventID, nil
}

func (t *memTx) LockRegistration(ctx context.Context, id string) (*domain.Registration, error) {
	t.m.locks = append(t.m.locks, "registration")
	r, ok := t.m.regs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (t *memTx) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus, updatedAt time.Time) error {
	r, ok := t.m.regs[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = updatedAt
	return nil
}

// recordingPublisher captures published messages.
type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	msgs []any
	err  error
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	p.msgs = append(p.msgs, payload)
	return p.err
}

func (p *recordingPublisher) count(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, k := range p.keys {
		if k == key {
			n++
		}
	}
	return n
}

// recordingEmail captures sent emails.
type recordingEmail struct {
	mu           sync.Mutex
	welcomes     []*domain.WelcomeMessageEmailData
	confirmation []*domain.RegistrationConfirmationEmailData
	err          error
}

func (e *recordingEmail) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.welcomes = append(e.welcomes, data)
	return e.err
}

func (e *recordingEmail) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.confirmation = append(e.confirmation, data)
	return e.err
}

// memUsers is an in-memory UserRepository.
type memUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*domain.User)}
}

func (m *memUsers) Create(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Update(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = updatedAt
	return nil
}

// plainHasher prefixes passwords so tests can read them back.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type staticIssuer struct{}

func (staticIssuer) Issue(u *domain.User) (string, error) { return "token-" + u.ID, nil }
