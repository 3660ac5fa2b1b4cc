package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the lifecycle state of a registration.
type RegistrationStatus string

const (
	StatusConfirmed RegistrationStatus = "confirmed"
	StatusPending   RegistrationStatus = "pending"
	StatusCancelled RegistrationStatus = "cancelled"
)

// DefaultTicketType is used when a registration request omits ticketType.
const DefaultTicketType = "Standard"

// RegistrationDateLayout is the calendar-day format of Registration.RegistrationDate.
const RegistrationDateLayout = "2006-01-02"

// Valid reports whether s is one of the known statuses.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether a registration in this status holds a seat.
func (s RegistrationStatus) Active() bool {
	return s == StatusConfirmed || s == StatusPending
}

// Registration represents one attendee's registration for one event.
// swagger:model Registration
type Registration struct {
	ID               string             `json:"id"`
	EventID          string             `json:"eventId"`
	AttendeeName     string             `json:"attendeeName"`
	AttendeeEmail    string             `json:"attendeeEmail"`
	AttendeePhone    string             `json:"attendeePhone"`
	RegistrationDate string             `json:"registrationDate"`
	Status           RegistrationStatus `json:"status"`
	TicketType       string             `json:"ticketType"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// NewRegistration returns a confirmed registration dated on the calendar day of now (UTC).
// ID is set by the repository on create.
func NewRegistration(eventID, name, email, phone, ticketType string, now time.Time) *Registration {
	if ticketType == "" {
		ticketType = DefaultTicketType
	}
	return &Registration{
		EventID:          eventID,
		AttendeeName:     name,
		AttendeeEmail:    email,
		AttendeePhone:    phone,
		RegistrationDate: now.UTC().Format(RegistrationDateLayout),
		Status:           StatusConfirmed,
		TicketType:       ticketType,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// RegistrationWithEvent is a registration with its event populated.
// Event is nil when the event could not be loaded.
type RegistrationWithEvent struct {
	*Registration
	Event *Event `json:"event"`
}

// RegistrationInput is the data needed to register an attendee.
type RegistrationInput struct {
	EventID       string
	AttendeeName  string
	AttendeeEmail string
	AttendeePhone string
	TicketType    string
}

// RegistrationTx is the set of storage operations available inside a registration transaction.
type RegistrationTx interface {
	// LockEvent loads the event and holds a row lock until the transaction ends.
	LockEvent(ctx context.Context, eventID string) (*Event, error)
	// FindDuplicate returns a registration for the event matching email or phone, or ErrNotFound.
	FindDuplicate(ctx context.Context, eventID, email, phone string) (*Registration, error)
	// CountActive counts the event's registrations that are not cancelled.
	CountActive(ctx context.Context, eventID string) (int, error)
	Create(ctx context.Context, reg *Registration) error
	// AdjustAttendees adds delta to the event's CurrentAttendees, never going below zero.
	AdjustAttendees(ctx context.Context, eventID string, delta int) error
	// RegistrationEventID returns the event a registration belongs to without locking, or ErrNotFound.
	RegistrationEventID(ctx context.Context, id string) (string, error)
	// LockRegistration loads the registration and holds a row lock until the transaction ends.
	LockRegistration(ctx context.Context, id string) (*Registration, error)
	UpdateStatus(ctx context.Context, id string, status RegistrationStatus, updatedAt time.Time) error
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// WithTx runs fn inside a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx RegistrationTx) error) error
	GetWithEvent(ctx context.Context, id string) (*RegistrationWithEvent, error)
	ListByEvent(ctx context.Context, eventID string, status RegistrationStatus) ([]*Registration, error)
	ListByEmail(ctx context.Context, email string) ([]*RegistrationWithEvent, error)
	ListByPhone(ctx context.Context, phone string) ([]*RegistrationWithEvent, error)
	// ListActiveWithEvents returns all non-cancelled registrations joined with their event.
	ListActiveWithEvents(ctx context.Context) ([]*RegistrationWithEvent, error)
}

// RegistrationService defines the registration and capacity-accounting workflow.
type RegistrationService interface {
	Register(ctx context.Context, in RegistrationInput) (*Registration, error)
	UpdateStatus(ctx context.Context, id string, status RegistrationStatus) (*RegistrationWithEvent, error)
	ListByEvent(ctx context.Context, eventID string, status RegistrationStatus) ([]*Registration, error)
	// ListByAttendee looks registrations up by email, or by phone when byPhone is set.
	ListByAttendee(ctx context.Context, identifier string, byPhone bool) ([]*RegistrationWithEvent, error)
	MatchByEmail(ctx context.Context, email string) ([]*RegistrationWithEvent, error)
}
