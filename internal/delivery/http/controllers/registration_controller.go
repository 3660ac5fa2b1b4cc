package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"evently/internal/delivery/http/helpers"
	"evently/internal/domain"
)

// CreateRegistrationRequest is the request body for POST /registrations.
type CreateRegistrationRequest struct {
	EventID       string `json:"eventId"`
	AttendeeName  string `json:"attendeeName"`
	AttendeeEmail string `json:"attendeeEmail"`
	AttendeePhone string `json:"attendeePhone"`
	TicketType    string `json:"ticketType"`
}

// Validate implements Validator. All four attendee fields are mandatory; the
// service trims and checks their format.
func (c CreateRegistrationRequest) Validate() []string {
	for _, v := range []string{c.EventID, c.AttendeeName, c.AttendeeEmail, c.AttendeePhone} {
		if strings.TrimSpace(v) == "" {
			return []string{"All fields are required: eventId, attendeeName, attendeeEmail, attendeePhone"}
		}
	}
	return nil
}

// UpdateStatusRequest is the request body for PUT /registrations/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RegistrationResponse wraps a single registration.
type RegistrationResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Registration *domain.Registration `json:"registration"`
}

// RegistrationWithEventResponse wraps a single registration with its event populated.
type RegistrationWithEventResponse struct {
	Success      bool                          `json:"success"`
	Message      string                        `json:"message"`
	Registration *domain.RegistrationWithEvent `json:"registration"`
}

// AttendeeRegistrationsResponse is the response body for GET /registrations/user/{identifier}.
type AttendeeRegistrationsResponse struct {
	Success       bool                            `json:"success"`
	Registrations []*domain.RegistrationWithEvent `json:"registrations"`
}

// MatchRegistrationsResponse is the response body for GET /registrations/match/{email}.
type MatchRegistrationsResponse struct {
	Success       bool                            `json:"success"`
	Registrations []*domain.RegistrationWithEvent `json:"registrations"`
	Count         int                             `json:"count"`
}

// EventRegistrationsResponse is the response body for GET /registrations/event/{eventId}.
type EventRegistrationsResponse struct {
	Success       bool                   `json:"success"`
	Registrations []*domain.Registration `json:"registrations"`
	Count         int                    `json:"count"`
}

// AnalyticsResponse is the response body for GET /registrations/analytics.
type AnalyticsResponse struct {
	Success   bool              `json:"success"`
	Analytics *domain.Analytics `json:"analytics"`
}

type RegistrationController struct {
	Logger    *slog.Logger
	Service   domain.RegistrationService
	Analytics domain.AnalyticsService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService, analytics domain.AnalyticsService) *RegistrationController {
	return &RegistrationController{
		Logger:    logger,
		Service:   svc,
		Analytics: analytics,
	}
}

// Create godoc
// @Summary Register for an event
// @Description Registers an attendee. The event's capacity and the attendee's email and phone are checked inside one transaction.
// @Tags registrations
// @Accept json
// @Produce json
// @Param body body CreateRegistrationRequest true "Registration data"
// @Success 201 {object} controllers.RegistrationResponse
// @Failure 400 {object} helpers.ErrorResponse "validation failed or event is fully booked"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 409 {object} helpers.ErrorResponse "already registered"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /registrations [post]
func (c *RegistrationController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), domain.RegistrationInput{
		EventID:       req.EventID,
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		AttendeePhone: req.AttendeePhone,
		TicketType:    req.TicketType,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{
			notFound: "Event not found",
			internal: "Failed to create registration. Please try again.",
		})
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, RegistrationResponse{
		Success:      true,
		Message:      "Registration successful!",
		Registration: reg,
	})
}

// ListByUser godoc
// @Summary List an attendee's registrations
// @Description Looks registrations up by email, or by phone when type=phone. Each registration has its event populated.
// @Tags registrations
// @Produce json
// @Param identifier path string true "Attendee email or phone"
// @Param type query string false "email (default) or phone"
// @Success 200 {object} controllers.AttendeeRegistrationsResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /registrations/user/{identifier} [get]
func (c *RegistrationController) ListByUser(w http.ResponseWriter, r *http.Request) {
	byPhone := r.URL.Query().Get("type") == "phone"
	regs, err := c.Service.ListByAttendee(r.Context(), r.PathValue("identifier"), byPhone)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Failed to fetch registrations"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, AttendeeRegistrationsResponse{Success: true, Registrations: regs})
}

// Match godoc
// @Summary Match registrations by email
// @Tags registrations
// @Produce json
// @Param email path string true "Attendee email"
// @Success 200 {object} controllers.MatchRegistrationsResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /registrations/match/{email} [get]
func (c *RegistrationController) Match(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.MatchByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Failed to match registrations"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, MatchRegistrationsResponse{Success: true, Registrations: regs, Count: len(regs)})
}

// UpdateStatus godoc
// @Summary Change a registration's status
// @Description Moves a registration between confirmed, pending and cancelled. Leaving the active set frees a seat; re-entering it takes one and is capacity-checked. Cancelling twice is a no-op.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID (UUID)"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} controllers.RegistrationWithEventResponse
// @Failure 400 {object} helpers.ErrorResponse "invalid status or event is fully booked"
// @Failure 404 {object} helpers.ErrorResponse "registration not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /registrations/{id}/status [put]
func (c *RegistrationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.UpdateStatus(r.Context(), r.PathValue("id"), domain.RegistrationStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{
			notFound: "Registration not found",
			internal: "Failed to update registration status",
		})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, RegistrationWithEventResponse{
		Success:      true,
		Message:      "Registration status updated",
		Registration: reg,
	})
}

// ListByEvent godoc
// @Summary List an event's registrations
// @Description Newest registration date first. An unknown event or status yields an empty list.
// @Tags registrations
// @Produce json
// @Param eventId path string true "Event ID (UUID)"
// @Param status query string false "confirmed, pending or cancelled"
// @Success 200 {object} controllers.EventRegistrationsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /registrations/event/{eventId} [get]
func (c *RegistrationController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	status := domain.RegistrationStatus(r.URL.Query().Get("status"))
	regs, err := c.Service.ListByEvent(r.Context(), r.PathValue("eventId"), status)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Failed to fetch event registrations"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventRegistrationsResponse{Success: true, Registrations: regs, Count: len(regs)})
}

// GetAnalytics godoc
// @Summary Dashboard analytics
// @Description Totals, per-month figures (Jan to Dec) and the category histogram, computed from non-cancelled registrations.
// @Tags registrations
// @Produce json
// @Success 200 {object} controllers.AnalyticsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /registrations/analytics [get]
func (c *RegistrationController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := c.Analytics.GetAnalytics(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Failed to fetch analytics data"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, AnalyticsResponse{Success: true, Analytics: analytics})
}
