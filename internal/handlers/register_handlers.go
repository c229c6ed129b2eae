package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/utility_billing_app/cmd/docs"
	portssvc "github.com/SscSPs/utility_billing_app/internal/core/ports/services"
	"github.com/SscSPs/utility_billing_app/internal/middleware"
	"github.com/SscSPs/utility_billing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	// Engine level so preflight requests, which match no OPTIONS route, still get CORS headers.
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	apiLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}
	settlementLimiter, err := middleware.NewIPRateLimiter(cfg.SettlementLimit)
	if err != nil {
		return fmt.Errorf("invalid SETTLEMENT_RATE_LIMIT %q: %w", cfg.SettlementLimit, err)
	}

	v1 := r.Group("/api/v1", middleware.RateLimit(apiLimiter))

	// Delegate route registration to specific handlers, passing required services
	registerHomeRoutes(v1)
	RegisterAccountRoutes(v1, service.Account, service.Payment)
	RegisterChargeRoutes(v1, service.Charge)
	RegisterPaymentRoutes(v1, service.Payment, middleware.RouteRateLimit(settlementLimiter))
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
