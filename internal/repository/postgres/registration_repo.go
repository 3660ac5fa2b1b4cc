package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"evently/internal/domain"
)

const registrationColumns = `id, event_id, attendee_name, attendee_email, attendee_phone,
	registration_date, status, ticket_type, created_at, updated_at`

const registrationWithEventColumns = `r.id, r.event_id, r.attendee_name, r.attendee_email, r.attendee_phone,
	r.registration_date, r.status, r.ticket_type, r.created_at, r.updated_at,
	e.id, e.title, e.description, e.event_date, e.event_time, e.location, e.max_attendees,
	e.current_attendees, e.price, e.image, e.category, e.organizer, e.tags, e.created_at, e.updated_at`

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) WithTx(ctx context.Context, fn func(tx domain.RegistrationTx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&registrationTx{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.AttendeeName, &reg.AttendeeEmail, &reg.AttendeePhone,
		&reg.RegistrationDate, &reg.Status, &reg.TicketType, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func scanRegistrationWithEvent(row rowScanner) (*domain.RegistrationWithEvent, error) {
	reg := &domain.Registration{}
	e := &domain.Event{}
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.AttendeeName, &reg.AttendeeEmail, &reg.AttendeePhone,
		&reg.RegistrationDate, &reg.Status, &reg.TicketType, &reg.CreatedAt, &reg.UpdatedAt,
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.MaxAttendees,
		&e.CurrentAttendees, &e.Price, &e.Image, &e.Category, &e.Organizer, pq.Array(&e.Tags),
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return &domain.RegistrationWithEvent{Registration: reg, Event: e}, nil
}

func (r *registrationRepository) GetWithEvent(ctx context.Context, id string) (*domain.RegistrationWithEvent, error) {
	query := `SELECT ` + registrationWithEventColumns + `
		FROM registrations r JOIN events e ON e.id = r.event_id
		WHERE r.id = $1`
	rwe, err := scanRegistrationWithEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rwe, nil
}

func (r *registrationRepository) ListByEvent(ctx context.Context, eventID string, status domain.RegistrationStatus) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE event_id = $1`
	args := []any{eventID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY registration_date DESC, created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) ListByEmail(ctx context.Context, email string) ([]*domain.RegistrationWithEvent, error) {
	return r.listWithEvents(ctx, `WHERE r.attendee_email = $1`, email)
}

func (r *registrationRepository) ListByPhone(ctx context.Context, phone string) ([]*domain.RegistrationWithEvent, error) {
	return r.listWithEvents(ctx, `WHERE r.attendee_phone = $1`, phone)
}

func (r *registrationRepository) ListActiveWithEvents(ctx context.Context) ([]*domain.RegistrationWithEvent, error) {
	return r.listWithEvents(ctx, `WHERE r.status <> $1`, domain.StatusCancelled)
}

func (r *registrationRepository) listWithEvents(ctx context.Context, where string, args ...any) ([]*domain.RegistrationWithEvent, error) {
	query := `SELECT ` + registrationWithEventColumns + `
		FROM registrations r JOIN events e ON e.id = r.event_id
		` + where + `
		ORDER BY r.registration_date DESC, r.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.RegistrationWithEvent{}
	for rows.Next() {
		rwe, err := scanRegistrationWithEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rwe)
	}
	return out, rows.Err()
}

// registrationTx runs registration workflow statements on an open transaction.
type registrationTx struct {
	q querier
}

func (t *registrationTx) LockEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	e, err := scanEvent(t.q.QueryRowContext(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (t *registrationTx) FindDuplicate(ctx context.Context, eventID, email, phone string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1 AND (attendee_email = $2 OR attendee_phone = $3)
		LIMIT 1`
	reg, err := scanRegistration(t.q.QueryRowContext(ctx, query, eventID, email, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (t *registrationTx) CountActive(ctx context.Context, eventID string) (int, error) {
	var n int
	err := t.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status <> $2`,
		eventID, domain.StatusCancelled,
	).Scan(&n)
	return n, err
}

func (t *registrationTx) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, attendee_name, attendee_email, attendee_phone,
			registration_date, status, ticket_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := t.q.QueryRowContext(ctx, query,
		reg.EventID, reg.AttendeeName, reg.AttendeeEmail, reg.AttendeePhone,
		reg.RegistrationDate, reg.Status, reg.TicketType, reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicateRegistration
	case isForeignKeyViolation(err):
		return domain.ErrNotFound
	}
	return err
}

func (t *registrationTx) AdjustAttendees(ctx context.Context, eventID string, delta int) error {
	res, err := t.q.ExecContext(ctx,
		`UPDATE events SET current_attendees = GREATEST(current_attendees + $2, 0), updated_at = NOW() WHERE id = $1`,
		eventID, delta,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrCapacityExceeded
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t *registrationTx) RegistrationEventID(ctx context.Context, id string) (string, error) {
	var eventID string
	err := t.q.QueryRowContext(ctx, `SELECT event_id FROM registrations WHERE id = $1`, id).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return eventID, err
}

func (t *registrationTx) LockRegistration(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1 FOR UPDATE`
	reg, err := scanRegistration(t.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (t *registrationTx) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus, updatedAt time.Time) error {
	res, err := t.q.ExecContext(ctx,
		`UPDATE registrations SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
