package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/khoahotran/profile-directory/pkg/logger"
)

type RouterConfig struct {
	CORSOrigins []string
	BodyLimit   int64
	ServiceName string
}

type Handlers struct {
	Health     *HealthHandler
	Profile    *ProfileHandler
	Search     *SearchHandler
	Settings   *SettingsHandler
	Submission *SubmissionHandler
}

// NewRouter wires middleware and routes. Middleware order: request log,
// panic recovery, tracing, CORS, error rendering, body cap.
func NewRouter(cfg RouterConfig, h Handlers, log logger.Logger) (*gin.Engine, error) {
	corsMiddleware, err := CORS(cfg.CORSOrigins)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		RequestLogger(log),
		Recovery(log),
		otelgin.Middleware(cfg.ServiceName),
		corsMiddleware,
		ErrorMiddleware(log),
		BodyLimit(cfg.BodyLimit),
	)

	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		profiles := api.Group("/profiles")
		{
			profiles.GET("", h.Profile.ListProfiles)
			profiles.POST("", h.Profile.CreateProfile)
			profiles.GET("/:id", h.Profile.GetProfile)
			profiles.PUT("/:id", h.Profile.UpdateProfile)
			profiles.DELETE("/:id", h.Profile.DeleteProfile)
		}

		api.GET("/website-settings", h.Settings.GetSettings)
		api.PUT("/website-settings", h.Settings.UpdateSettings)

		api.POST("/contact", h.Submission.SubmitContact)
		api.POST("/booking", h.Submission.SubmitBooking)

		api.GET("/search", h.Search.Search)
	}

	router.NoRoute(NotFound)

	return router, nil
}
