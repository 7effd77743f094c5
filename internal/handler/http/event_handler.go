package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mveu/events-api/internal/domain/entity"
	"github.com/mveu/events-api/internal/handler/http/dto"
	"github.com/mveu/events-api/internal/infrastructure/metrics"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// EventHandlerInterface defines the methods for the event handler to allow
// interface-based dependency injection (for testing/mocking)
type EventHandlerInterface interface {
	ListEvents(*gin.Context)
	GetEvent(*gin.Context)
	CreateEvent(*gin.Context)
	MarkPassed(*gin.Context)
	DeleteEvent(*gin.Context)
	GetEventsByIDs(*gin.Context)
}

var _ EventHandlerInterface = (*EventHandler)(nil)

type EventHandler struct {
	eventUsecase usecasecontract.IEventUseCase
}

func NewEventHandler(eventUsecase usecasecontract.IEventUseCase) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
	}
}

// ListEvents handles GET /getevents
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventUsecase.ListEvents(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, events)
}

// GetEvent handles GET /getevent/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventUsecase.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, event)
}

// CreateEvent handles POST /addevents (multipart form with up to 5 images)
func (h *EventHandler) CreateEvent(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	input := usecasecontract.CreateEventInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		Images:      form.File["images"],
	}

	if dateStr := c.PostForm("date"); dateStr != "" {
		date, err := parseEventDate(dateStr)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Invalid date format")
			return
		}
		input.Date = &date
	}

	event, err := h.eventUsecase.CreateEvent(c.Request.Context(), input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	metrics.EventsCreatedTotal.Inc()
	SuccessHandler(c, http.StatusCreated, dto.EventMutationResponse{
		Message: "Event created",
		Event:   *event,
	})
}

// MarkPassed handles PUT /event/:id/pass (admin only)
func (h *EventHandler) MarkPassed(c *gin.Context) {
	event, err := h.eventUsecase.MarkPassed(c.Request.Context(), c.Param("id"), actorRole(c))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	metrics.EventsPassedTotal.Inc()
	SuccessHandler(c, http.StatusOK, dto.EventMutationResponse{
		Message: "Event marked as passed",
		Event:   *event,
	})
}

// DeleteEvent handles DELETE /event/:id (admin only)
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	event, err := h.eventUsecase.DeleteEvent(c.Request.Context(), c.Param("id"), actorRole(c))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	metrics.EventsDeletedTotal.Inc()
	SuccessHandler(c, http.StatusOK, dto.EventMutationResponse{
		Message: "Event deleted",
		Event:   *event,
	})
}

// GetEventsByIDs handles POST /geteventsbyids. Malformed IDs are dropped
// silently; the result may be empty but is never an error.
func (h *EventHandler) GetEventsByIDs(c *gin.Context) {
	var req dto.BatchEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.EventIDs) == 0 {
		SuccessHandler(c, http.StatusOK, []entity.Event{})
		return
	}

	events, err := h.eventUsecase.GetEventsByIDs(c.Request.Context(), req.EventIDs)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, events)
}

// actorRole reads the caller's effective role placed in the context by the
// auth middleware. Routes without the middleware see an empty role.
func actorRole(c *gin.Context) entity.UserRole {
	v, exists := c.Get("userRole")
	if !exists {
		return ""
	}
	role, _ := v.(entity.UserRole)
	return role
}

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
