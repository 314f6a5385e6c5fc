package handlers

import (
	"os"
	"time"

	"technews/internal/logger"
	"technews/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "technews/docs"
)

// Options carries the HTTP-facing settings of the session cookie and assets.
type Options struct {
	CookieName   string
	SecureCookie bool
	SessionTTL   time.Duration
	StaticDir    string // served under /static when it exists
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, opts Options, log *logger.Logger) *Handler {
	if opts.CookieName == "" {
		opts.CookieName = defaultCookieName
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = service.DefaultSessionTTL
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.sessionMiddleware)
	router.SetHTMLTemplate(views)

	if h.opts.StaticDir != "" {
		if fi, err := os.Stat(h.opts.StaticDir); err == nil && fi.IsDir() {
			router.Static("/static", h.opts.StaticDir)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerPostRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/login", h.showLogin)
	r.POST("/login", h.login)
	r.POST("/register", h.register)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerPostRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/posts/:id", h.viewPost)

	authed := r.Group("/", h.requireAuthenticated)
	{
		authed.GET("/create-post", h.showCreatePost)
		authed.POST("/create-post", h.createPost)
		authed.GET("/edit-post/:id", h.showEditPost)
		authed.POST("/edit-post/:id", h.editPost)
		authed.POST("/delete-post/:id", h.deletePost)

		// live dashboard feed (HTTP upgrade), same port
		authed.GET("/ws/dashboard", h.wsDashboard)
	}
}
