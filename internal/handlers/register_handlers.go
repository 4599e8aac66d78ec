package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/macrodyn/solow_model_app/cmd/docs"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/middleware"
	"github.com/macrodyn/solow_model_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes (rate limited inside)
	registerAuthRoutes(r, cfg, services)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations. API token auth runs first; requests without the token
// header fall through to JWT auth.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1",
		middleware.APITokenAuthMiddleware(services.APIToken),
		middleware.AuthMiddleware(cfg),
	)

	registerUserRoutes(v1, services.User)
	registerPresetRoutes(v1, services.Preset)
	RegisterComputeRoutes(v1)
	registerAPITokenRoutes(v1, services.APIToken)
	registerWorkspaceRoutes(v1, services)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
