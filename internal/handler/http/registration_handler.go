package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mveu/events-api/internal/handler/http/dto"
	"github.com/mveu/events-api/internal/infrastructure/metrics"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// RegistrationHandlerInterface defines the methods for the registration
// handler to allow interface-based dependency injection (for testing/mocking)
type RegistrationHandlerInterface interface {
	Register(*gin.Context)
	Unregister(*gin.Context)
	GetMembership(*gin.Context)
	GetEventsForUser(*gin.Context)
}

var _ RegistrationHandlerInterface = (*RegistrationHandler)(nil)

type RegistrationHandler struct {
	registrationUsecase usecasecontract.IRegistrationUseCase
}

func NewRegistrationHandler(registrationUsecase usecasecontract.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
	}
}

// Register handles POST /registerevent
func (h *RegistrationHandler) Register(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.RegisterEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	eventIDs, err := h.registrationUsecase.Register(c.Request.Context(), userID, req.EventID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	metrics.EventRegistrationsTotal.Inc()
	SuccessHandler(c, http.StatusOK, dto.RegistrationResponse{
		Message:     "Registered for the event",
		EventIDList: eventIDs,
	})
}

// Unregister handles POST /unregisterevent
func (h *RegistrationHandler) Unregister(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.RegisterEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	eventIDs, err := h.registrationUsecase.Unregister(c.Request.Context(), userID, req.EventID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	metrics.EventUnregistrationsTotal.Inc()
	SuccessHandler(c, http.StatusOK, dto.RegistrationResponse{
		Message:     "Unregistered from the event",
		EventIDList: eventIDs,
	})
}

// GetMembership handles GET /user/:id
func (h *RegistrationHandler) GetMembership(c *gin.Context) {
	eventIDs, err := h.registrationUsecase.GetMembership(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.MembershipResponse{EventID: eventIDs})
}

// GetEventsForUser handles GET /user/:id/events
func (h *RegistrationHandler) GetEventsForUser(c *gin.Context) {
	events, err := h.registrationUsecase.GetEventsForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, events)
}

// callerID reads the authenticated user ID placed in the context by the auth
// middleware.
func callerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	userID, ok := v.(string)
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Invalid user ID format in token")
		return "", false
	}
	return userID, true
}
