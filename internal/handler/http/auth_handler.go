package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mveu/events-api/internal/handler/http/dto"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewAuthHandler(userUsecase usecasecontract.IUserUseCase) *AuthHandler {
	return &AuthHandler{
		userUsecase: userUsecase,
	}
}

// Register handles account creation (POST /reg)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	_, err := h.userUsecase.Register(c.Request.Context(), req.Login, req.Name, req.Surname, req.Lastname, req.Email, req.Password)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	MessageHandler(c, http.StatusCreated, "User created")
}

// Login handles authentication (POST /login)
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		Token: token,
		Role:  user.Roles,
		ID:    user.ID,
	})
}
