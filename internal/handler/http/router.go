package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mveu/events-api/internal/handler/http/middleware"
	"github.com/mveu/events-api/internal/usecase"
	usecasecontract "github.com/mveu/events-api/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	authHandler         *AuthHandler
	eventHandler        *EventHandler
	registrationHandler *RegistrationHandler
	adminHandler        *AdminHandler
	tokenService        usecase.TokenService
	uploadDir           string
	rateLimitPerSec     float64
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	eventUsecase usecasecontract.IEventUseCase,
	registrationUsecase usecasecontract.IRegistrationUseCase,
	tokenService usecase.TokenService,
	uploadDir string,
	rateLimitPerSec float64,
) *Router {
	return &Router{
		authHandler:         NewAuthHandler(userUsecase),
		eventHandler:        NewEventHandler(eventUsecase),
		registrationHandler: NewRegistrationHandler(registrationUsecase),
		adminHandler:        NewAdminHandler(userUsecase),
		tokenService:        tokenService,
		uploadDir:           uploadDir,
		rateLimitPerSec:     rateLimitPerSec,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimitPerSec, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded event images are served as static assets.
	router.Static("/uploads", r.uploadDir)

	// Public routes (no authentication required)
	router.POST("/reg", r.authHandler.Register)
	router.POST("/login", r.authHandler.Login)
	router.GET("/getevents", r.eventHandler.ListEvents)
	router.GET("/getevent/:id", r.eventHandler.GetEvent)
	router.POST("/geteventsbyids", r.eventHandler.GetEventsByIDs)
	// Create has no auth gate. That matches the deployed admin UI; see
	// DESIGN.md before tightening it.
	router.POST("/addevents", r.eventHandler.CreateEvent)
	// Membership reads are exposed without a credential check.
	router.GET("/user/:id", r.registrationHandler.GetMembership)
	router.GET("/user/:id/events", r.registrationHandler.GetEventsForUser)

	// Protected routes (authentication required)
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.tokenService))
	{
		protected.POST("/registerevent", r.registrationHandler.Register)
		protected.POST("/unregisterevent", r.registrationHandler.Unregister)

		// Admin-gated lifecycle transitions; the role check lives in the
		// usecases.
		protected.PUT("/event/:id/pass", r.eventHandler.MarkPassed)
		protected.DELETE("/event/:id", r.eventHandler.DeleteEvent)
		protected.GET("/admin/users", r.adminHandler.ListUsers)
	}
}
