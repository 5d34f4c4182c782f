package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/attendance"
	googleauth "campus-backend/internal/auth"
	"campus-backend/internal/interventions"
	"campus-backend/internal/profiles"
	"campus-backend/internal/recommendations"
	"campus-backend/internal/schedule"
	"campus-backend/internal/shared/config"
	"campus-backend/internal/shared/metrics"
	"campus-backend/internal/shared/server/middleware"
	"campus-backend/internal/shared/server/respond"
	"campus-backend/internal/tasks"
)

// generateGroup is the rate-limit bucket for LLM-backed endpoints.
const generateGroup = "GENERATE"

// Deps holds everything the router mounts. Construction happens in
// bootstrap so the router stays wiring-only.
type Deps struct {
	Config          config.Config
	GoogleAuth      *googleauth.GoogleService
	Profiles        *profiles.Handler
	Attendance      *attendance.Handler
	Tasks           *tasks.Handler
	Schedule        *schedule.Handler
	Recommendations *recommendations.Handler
	Interventions   *interventions.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				generateGroup: {Rate: 0.5, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				path := c.FullPath()
				if (path == "/api/v1/recommendations" && c.Request.Method == http.MethodGet) ||
					path == "/api/v1/counselor/interventions" {
					return generateGroup
				}
				return ""
			},
		}),
	)

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.GoogleAuth.RegisterRoutes(api)
	deps.Profiles.RegisterRoutes(api)
	deps.Attendance.RegisterRoutes(api)
	deps.Tasks.RegisterRoutes(api)
	deps.Schedule.RegisterRoutes(api)
	deps.Recommendations.RegisterRoutes(api)

	counselor := api.Group("/counselor", middleware.RequireRole(profiles.RoleCounselor, profiles.RoleAdmin))
	deps.Profiles.RegisterCounselorRoutes(counselor)
	deps.Interventions.RegisterRoutes(counselor)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
