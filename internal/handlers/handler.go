package handlers

import (
	"heating_leads/internal/logger"
	"heating_leads/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tunes the HTTP layer.
type Options struct {
	AllowedOrigins []string
	// RateLimit is requests per second per client IP on session routes; <= 0 disables it.
	RateLimit      float64
	Burst          int
	// AllowSignUp exposes POST /auth/sign-up. Operators are otherwise created from the CLI.
	AllowSignUp    bool
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
	limiter  *IPRateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Handler{
		services: services,
		log:      log,
		opts:     opts,
		limiter:  NewIPRateLimiter(limit, burst, log),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws/sessions/:id", h.wsSession)

	return router
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	origins := make([]string, 0, len(h.opts.AllowedOrigins))
	for _, o := range h.opts.AllowedOrigins {
		if o == "*" {
			origins = nil
			break
		}
		origins = append(origins, o)
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		if h.opts.AllowSignUp {
			auth.POST("/sign-up", h.signUp)
		}
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerSessionRoutes(api)
		api.GET("/estimate", h.estimate)
		h.registerJournalRoutes(api)
	}
}

func (h *Handler) registerSessionRoutes(api *gin.RouterGroup) {
	sessions := api.Group("/sessions", h.limiter.RateLimit())
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		// Body example: {"type":"next","answers":{"building_size_m2":140}}
		sessions.POST("/:id/events", h.dispatchEvent)
	}
}

func (h *Handler) registerJournalRoutes(api *gin.RouterGroup) {
	journal := api.Group("/journal", h.operatorIdentity)
	{
		journal.GET("/", h.getJournal)
	}
}
