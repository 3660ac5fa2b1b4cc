package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"evently/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	publisher        domain.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
	contextTimeout   time.Duration
}

func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	publisher domain.EventPublisher,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		emailService:     emailService,
		publisher:        publisher,
		logger:           logger,
		now:              time.Now,
		contextTimeout:   timeout,
	}
}

func normalizeRegistrationInput(in domain.RegistrationInput) (domain.RegistrationInput, error) {
	in.EventID = normalizeID(in.EventID)
	in.AttendeeName = strings.TrimSpace(in.AttendeeName)
	in.AttendeeEmail = strings.ToLower(strings.TrimSpace(in.AttendeeEmail))
	in.AttendeePhone = strings.TrimSpace(in.AttendeePhone)
	in.TicketType = strings.TrimSpace(in.TicketType)

	if in.EventID == "" || in.AttendeeName == "" || in.AttendeeEmail == "" || in.AttendeePhone == "" {
		return in, domain.NewValidationError("All fields are required: eventId, attendeeName, attendeeEmail, attendeePhone")
	}
	var problems []string
	if !isUUID(in.EventID) {
		problems = append(problems, "eventId must be a valid event id")
	}
	if !isEmail(in.AttendeeEmail) {
		problems = append(problems, "attendeeEmail must be a valid email address")
	}
	if len(problems) > 0 {
		return in, domain.NewValidationError(problems...)
	}
	return in, nil
}

// Register books a seat on the event. Duplicate and capacity checks, the insert and
// the counter increment all run under a lock on the event row.
func (s *registrationService) Register(ctx context.Context, in domain.RegistrationInput) (*domain.Registration, error) {
	in, err := normalizeRegistrationInput(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		reg   *domain.Registration
		event *domain.Event
	)
	err = s.registrationRepo.WithTx(ctx, func(tx domain.RegistrationTx) error {
		e, err := tx.LockEvent(ctx, in.EventID)
		if err != nil {
			return err
		}

		if _, err := tx.FindDuplicate(ctx, e.ID, in.AttendeeEmail, in.AttendeePhone); err == nil {
			return domain.ErrDuplicateRegistration
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		active, err := tx.CountActive(ctx, e.ID)
		if err != nil {
			return err
		}
		if !e.HasCapacity(active) {
			return domain.ErrCapacityExceeded
		}

		r := domain.NewRegistration(e.ID, in.AttendeeName, in.AttendeeEmail, in.AttendeePhone, in.TicketType, s.now())
		if err := tx.Create(ctx, r); err != nil {
			return err
		}
		if err := tx.AdjustAttendees(ctx, e.ID, 1); err != nil {
			return err
		}
		e.CurrentAttendees++
		reg, event = r, e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("register attendee: %w", err)
	}

	s.publish(ctx, domain.RoutingKeyRegistrationCreated, reg)
	if err := s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{
		Email:          reg.AttendeeEmail,
		AttendeeName:   reg.AttendeeName,
		EventTitle:     event.Title,
		EventDate:      event.Date,
		EventTime:      event.Time,
		EventLocation:  event.Location,
		TicketType:     reg.TicketType,
		RegistrationID: reg.ID,
	}); err != nil {
		s.logger.WarnContext(ctx, "registration confirmation email failed", "registration_id", reg.ID, "err", err)
	}
	return reg, nil
}

// UpdateStatus moves a registration to status. Leaving the active set frees a seat,
// re-entering it takes one if the event still has capacity. Repeating a status is a no-op
// for the attendee counter.
func (s *registrationService) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.RegistrationWithEvent, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("Invalid status. Must be: confirmed, pending, or cancelled")
	}
	id = normalizeID(id)
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var change domain.RegistrationStatusChanged
	err := s.registrationRepo.WithTx(ctx, func(tx domain.RegistrationTx) error {
		// Event row first, then registration row: the same order as an event
		// delete cascading to its registrations.
		eventID, err := tx.RegistrationEventID(ctx, id)
		if err != nil {
			return err
		}
		e, err := tx.LockEvent(ctx, eventID)
		if err != nil {
			return err
		}
		reg, err := tx.LockRegistration(ctx, id)
		if err != nil {
			return err
		}

		delta := 0
		switch {
		case reg.Status.Active() && !status.Active():
			delta = -1
		case !reg.Status.Active() && status.Active():
			active, err := tx.CountActive(ctx, e.ID)
			if err != nil {
				return err
			}
			if !e.HasCapacity(active) {
				return domain.ErrCapacityExceeded
			}
			delta = 1
		}

		if err := tx.UpdateStatus(ctx, reg.ID, status, s.now()); err != nil {
			return err
		}
		if delta != 0 {
			if err := tx.AdjustAttendees(ctx, reg.EventID, delta); err != nil {
				return err
			}
		}
		change = domain.RegistrationStatusChanged{
			RegistrationID: reg.ID,
			EventID:        reg.EventID,
			PreviousStatus: reg.Status,
			Status:         status,
			AttendeesDelta: delta,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update registration status: %w", err)
	}

	if change.PreviousStatus != change.Status {
		s.publish(ctx, domain.RoutingKeyRegistrationStatusChanged, change)
	}

	rwe, err := s.registrationRepo.GetWithEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load registration: %w", err)
	}
	return rwe, nil
}

func (s *registrationService) ListByEvent(ctx context.Context, eventID string, status domain.RegistrationStatus) ([]*domain.Registration, error) {
	eventID = normalizeID(eventID)
	if !isUUID(eventID) || (status != "" && !status.Valid()) {
		return []*domain.Registration{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.registrationRepo.ListByEvent(ctx, eventID, status)
}

func (s *registrationService) ListByAttendee(ctx context.Context, identifier string, byPhone bool) ([]*domain.RegistrationWithEvent, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, domain.NewValidationError("User identifier is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if byPhone {
		return s.registrationRepo.ListByPhone(ctx, identifier)
	}
	return s.registrationRepo.ListByEmail(ctx, strings.ToLower(identifier))
}

func (s *registrationService) MatchByEmail(ctx context.Context, email string) ([]*domain.RegistrationWithEvent, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.NewValidationError("Email is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.registrationRepo.ListByEmail(ctx, email)
}

func (s *registrationService) publish(ctx context.Context, routingKey string, payload any) {
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		s.logger.WarnContext(ctx, "publish failed", "routing_key", routingKey, "err", err)
	}
}
