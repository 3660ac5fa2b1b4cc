package domain

import "context"

// Routing keys for messages published on the domain exchange.
const (
	RoutingKeyRegistrationCreated       = "registration.created"
	RoutingKeyRegistrationStatusChanged = "registration.status_changed"
	RoutingKeyEventCreated              = "event.created"
	RoutingKeyEventUpdated              = "event.updated"
	RoutingKeyEventDeleted              = "event.deleted"
)

// EventPublisher publishes domain messages to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// RegistrationStatusChanged is the payload of RoutingKeyRegistrationStatusChanged.
type RegistrationStatusChanged struct {
	RegistrationID string             `json:"registrationId"`
	EventID        string             `json:"eventId"`
	PreviousStatus RegistrationStatus `json:"previousStatus"`
	Status         RegistrationStatus `json:"status"`
	AttendeesDelta int                `json:"attendeesDelta"`
}

// EventDeleted is the payload of RoutingKeyEventDeleted.
type EventDeleted struct {
	EventID string `json:"eventId"`
}
