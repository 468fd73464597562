package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/mindscribe/journal_ai_app/cmd/docs"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/middleware"
	"github.com/mindscribe/journal_ai_app/internal/platform/config"
	"github.com/mindscribe/journal_ai_app/internal/utils"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register provider webhook routes (public, verified by signature)
	registerWebhookRoutes(r, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators wires domain validations into the binding layer.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("journaltemplate", func(fl validator.FieldLevel) bool {
			_, ok := domain.TemplateByID(fl.Field().String())
			return ok
		})
	}
}

// registerWebhookRoutes sets up the provider-facing webhook endpoints.
// They sit outside the session-auth group; each payload authenticates itself.
func registerWebhookRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Define rate limit: 60 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("60-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.GinMiddlewarize(ipLimiter)

	webhooks := r.Group("/webhooks", limitMiddleware)
	{
		identityHandler := newIdentityWebhookHandler(services.User)
		webhooks.POST("/identity", identityHandler.handleIdentityEvent)

		billingHandler := newBillingHandler(services.Billing)
		webhooks.POST("/payment", billingHandler.handlePaymentEvent)
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.SessionJWTSecret, services.User),
		middleware.PosthogMiddleware(posthogClient),
	)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User)
	registerJournalRoutes(v1, services.Journal, posthogClient)
	registerCreditRoutes(v1, services.Credit)
	registerBillingRoutes(v1, services.Billing, posthogClient)
	registerTemplateRoutes(v1)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
