package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"evently/internal/domain"
)

// Runner seeds demo data through the application services, so registrations
// go through the same capacity accounting as API traffic.
type Runner struct {
	Events        domain.EventService
	Registrations domain.RegistrationService
	Users         domain.UserRepository
	Hasher        domain.PasswordHasher
	Logger        *slog.Logger
	Now           func() time.Time
}

// Stats counts what a run created.
type Stats struct {
	Events        int
	Users         int
	Registrations int
}

// Run seeds events when none exist, creates missing users, and registers the
// demo attendees. It is safe to run repeatedly.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	events, err := r.seedEvents(ctx, &stats)
	if err != nil {
		return stats, err
	}
	if err := r.seedUsers(ctx, &stats); err != nil {
		return stats, err
	}
	if err := r.seedRegistrations(ctx, events, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func (r *Runner) seedEvents(ctx context.Context, stats *Stats) ([]*domain.Event, error) {
	existing, total, err := r.Events.ListEvents(ctx, domain.EventFilter{}, domain.PaginationParams{Limit: len(Events)})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if total > 0 {
		r.Logger.InfoContext(ctx, "events already present, skipping event fixtures", "count", total)
		return existing, nil
	}

	created := make([]*domain.Event, 0, len(Events))
	for _, fixture := range Events {
		event := fixture
		event.Tags = append([]string(nil), fixture.Tags...)
		if err := r.Events.CreateEvent(ctx, &event); err != nil {
			return nil, fmt.Errorf("create event %q: %w", fixture.Title, err)
		}
		created = append(created, &event)
		stats.Events++
	}
	r.Logger.InfoContext(ctx, "seeded events", "count", stats.Events)
	return created, nil
}

func (r *Runner) seedUsers(ctx context.Context, stats *Stats) error {
	for _, fixture := range Users {
		_, err := r.Users.GetByEmail(ctx, fixture.Email)
		if err == nil {
			r.Logger.InfoContext(ctx, "user already exists", "email", fixture.Email)
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("get user %s: %w", fixture.Email, err)
		}

		hash, err := r.Hasher.Hash(fixture.Password)
		if err != nil {
			return err
		}
		user := domain.NewUser(fixture.Name, fixture.Email, hash, fixture.Avatar, r.Now())
		user.Role = fixture.Role
		user.Phone = fixture.Phone
		user.DateOfBirth = fixture.DateOfBirth
		user.Location = fixture.Location
		if err := r.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user %s: %w", fixture.Email, err)
		}
		stats.Users++
	}
	return nil
}

func (r *Runner) seedRegistrations(ctx context.Context, events []*domain.Event, stats *Stats) error {
	if len(events) == 0 {
		return nil
	}
	for _, fixture := range Registrations {
		event := events[fixture.EventIndex%len(events)]
		reg, err := r.Registrations.Register(ctx, domain.RegistrationInput{
			EventID:       event.ID,
			AttendeeName:  fixture.Name,
			AttendeeEmail: fixture.Email,
			AttendeePhone: fixture.Phone,
			TicketType:    fixture.TicketType,
		})
		switch {
		case errors.Is(err, domain.ErrDuplicateRegistration), errors.Is(err, domain.ErrCapacityExceeded):
			r.Logger.InfoContext(ctx, "registration skipped", "email", fixture.Email, "event", event.Title, "reason", err)
			continue
		case err != nil:
			return fmt.Errorf("register %s: %w", fixture.Email, err)
		}
		if fixture.Status != domain.StatusConfirmed {
			if _, err := r.Registrations.UpdateStatus(ctx, reg.ID, fixture.Status); err != nil {
				return fmt.Errorf("set status of %s: %w", fixture.Email, err)
			}
		}
		stats.Registrations++
	}
	return nil
}
