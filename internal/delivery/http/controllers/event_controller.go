package controllers

import (
	"log/slog"
	"net/http"

	"evently/internal/delivery/http/helpers"
	"evently/internal/domain"
)

// EventRequest is the request body for POST /events and PUT /events/{id}.
// currentAttendees is not accepted; it is maintained by registrations.
type EventRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Location     string   `json:"location"`
	MaxAttendees int      `json:"maxAttendees" validate:"gte=0"`
	Price        float64  `json:"price" validate:"gte=0"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Organizer    string   `json:"organizer"`
	Tags         []string `json:"tags"`
}

func (req EventRequest) toEvent(id string) *domain.Event {
	return &domain.Event{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		MaxAttendees: req.MaxAttendees,
		Price:        req.Price,
		Image:        req.Image,
		Category:     req.Category,
		Organizer:    req.Organizer,
		Tags:         req.Tags,
	}
}

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// CategoriesResponse is the response body for GET /events/categories.
type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

// EventResponse wraps a single event for the admin endpoints.
type EventResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List events
// @Description Paginated events sorted by date ascending. search matches title, description or any tag, case-insensitively.
// @Tags events
// @Produce json
// @Param limit query int false "Page size (default 10, max 50)"
// @Param offset query int false "Number of events to skip"
// @Param category query string false "Category, or all"
// @Param search query string false "Search text"
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	page := helpers.ParseLimitOffset(r)
	q := r.URL.Query()
	filter := domain.EventFilter{Category: q.Get("category"), Search: q.Get("search")}

	events, total, err := c.Service.ListEvents(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Failed to fetch events"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListEventsResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(page, total),
	})
}

// Categories godoc
// @Summary List event categories
// @Tags events
// @Produce json
// @Success 200 {object} controllers.CategoriesResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/categories [get]
func (c *EventController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Failed to fetch categories"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// Get godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{notFound: "Event not found", internal: "Failed to fetch event"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Description Admin only. The attendee counter starts at zero.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event data"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toEvent("")
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Failed to create event"})
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{Success: true, Message: "Event created", Event: event})
}

// Update godoc
// @Summary Update an event
// @Description Admin only. Replaces the editable fields; maxAttendees may not drop below currentAttendees.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Param body body EventRequest true "Event data"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), req.toEvent(r.PathValue("id")))
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{notFound: "Event not found", internal: "Failed to update event"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Success: true, Message: "Event updated", Event: event})
}

// Delete godoc
// @Summary Delete an event
// @Description Admin only. The event's registrations are deleted with it.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{notFound: "Event not found", internal: "Failed to delete event"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Success: true, Message: "Event deleted"})
}
