package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mveu/events-api/internal/domain/entity"
	handler "github.com/mveu/events-api/internal/handler/http"
	dto "github.com/mveu/events-api/internal/handler/http/dto"
	mocks "github.com/mveu/events-api/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func roleOf(s string) entity.UserRole {
	return entity.UserRole(s)
}

func setupCatalogRouter(h handler.EventHandlerInterface, role string) *gin.Engine {
	r := gin.New()
	r.GET("/getevents", h.ListEvents)
	r.GET("/getevent/:id", h.GetEvent)
	r.POST("/geteventsbyids", h.GetEventsByIDs)
	r.PUT("/event/:id/pass", asUser("user-1", role), h.MarkPassed)
	r.DELETE("/event/:id", asUser("user-1", role), h.DeleteEvent)
	return r
}

func TestListEvents(t *testing.T) {
	mockUsecase := mocks.NewMockEventUsecase()
	h := handler.NewEventHandler(mockUsecase)
	r := setupCatalogRouter(h, "user")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/getevents", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Demo")
	assert.Contains(t, w.Body.String(), `"passed":false`)
}

func TestGetEvent_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockEventUsecase()
	mockUsecase.ShouldFailNotFound = true
	h := handler.NewEventHandler(mockUsecase)
	r := setupCatalogRouter(h, "user")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/getevent/mock-event-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkPassed_Admin(t *testing.T) {
	mockUsecase := mocks.NewMockEventUsecase()
	h := handler.NewEventHandler(mockUsecase)
	r := setupCatalogRouter(h, "admin")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/event/mock-event-id/pass", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"passed":true`)
}

func TestMarkPassed_ForbiddenForUser(t *testing.T) {
	mockUsecase := mocks.NewMockEventUsecase()
	h := handler.NewEventHandler(mockUsecase)
	r := setupCatalogRouter(h, "user")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/event/mock-event-id/pass", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")
}

func TestDeleteEvent_ForbiddenForUser(t *testing.T) {
	mockUsecase := mocks.NewMockEventUsecase()
	h := handler.NewEventHandler(mockUsecase)
	r := setupCatalogRouter(h, "user")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/event/mock-event-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteEvent_Admin(t *testing.T) {
	mockUsecase := mocks.NewMockEventUsecase()
	h := handler.NewEventHandler(mockUsecase)
	r := setupCatalogRouter(h, "admin")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/event/mock-event-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Event deleted")
}

func TestGetEventsByIDs_EmptyBody(t *testing.T) {
	mockUsecase := mocks.NewMockEventUsecase()
	h := handler.NewEventHandler(mockUsecase)
	r := setupCatalogRouter(h, "user")

	w := postJSON(r, "/geteventsbyids", dto.BatchEventsRequest{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetEventsByIDs(t *testing.T) {
	mockUsecase := mocks.NewMockEventUsecase()
	h := handler.NewEventHandler(mockUsecase)
	r := setupCatalogRouter(h, "user")

	w := postJSON(r, "/geteventsbyids", dto.BatchEventsRequest{EventIDs: []string{"mock-event-id"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-event-id")
}
