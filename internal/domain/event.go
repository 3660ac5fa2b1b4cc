package domain

import (
	"context"
	"time"
)

// Event is a schedulable happening with a finite attendance capacity.
// CurrentAttendees is a denormalized counter owned by the registration workflow.
// swagger:model Event
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	MaxAttendees     int       `json:"maxAttendees"`
	CurrentAttendees int       `json:"currentAttendees"`
	Price            float64   `json:"price"`
	Image            string    `json:"image"`
	Category         string    `json:"category"`
	Organizer        string    `json:"organizer"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// HasCapacity reports whether another attendee fits, given the number of active registrations.
func (e *Event) HasCapacity(active int) bool {
	return active < e.MaxAttendees
}

// EventFilter narrows event listings. Empty fields are ignored.
type EventFilter struct {
	Category string
	Search   string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// Update writes the editable fields of event. CurrentAttendees is left untouched.
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EventFilter, page PaginationParams) ([]*Event, int, error)
	ListAll(ctx context.Context) ([]*Event, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// EventService defines event browsing and administration.
type EventService interface {
	ListEvents(ctx context.Context, filter EventFilter, page PaginationParams) ([]*Event, int, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
