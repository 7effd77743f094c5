package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// AdminHandlerInterface defines the methods for the admin handler to allow
// interface-based dependency injection (for testing/mocking)
type AdminHandlerInterface interface {
	ListUsers(*gin.Context)
}

var _ AdminHandlerInterface = (*AdminHandler)(nil)

type AdminHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewAdminHandler(userUsecase usecasecontract.IUserUseCase) *AdminHandler {
	return &AdminHandler{
		userUsecase: userUsecase,
	}
}

// ListUsers handles GET /admin/users (admin only)
func (h *AdminHandler) ListUsers(c *gin.Context) {
	summaries, err := h.userUsecase.ListUsersWithEventCounts(c.Request.Context(), actorRole(c))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, summaries)
}
