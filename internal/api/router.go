package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/sustainalink/platform/internal/api/docs"
	"github.com/sustainalink/platform/internal/api/handler"
	"github.com/sustainalink/platform/internal/api/middleware"
	"github.com/sustainalink/platform/internal/core/domain"
	"github.com/sustainalink/platform/internal/core/ports"
	"github.com/sustainalink/platform/internal/infrastructure/http/handlers"
)

const (
	defaultBodyLimit = "10M"
	defaultRateRPS   = 20
)

// Dependencies is everything the HTTP layer needs. HTTP metrics and /metrics
// are only mounted when MetricsRegisterer is set.
type Dependencies struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Products  ports.ProductService
	Suppliers ports.SupplierService
	Reports   ports.ESGReportService
	Rewards   ports.RewardService
	AI        ports.AIService

	Authenticator     *middleware.Authenticator
	Readiness         *handlers.ReadinessHandler
	MetricsRegisterer prometheus.Registerer
	MetricsGatherer   prometheus.Gatherer
	Log               zerolog.Logger

	CORSOrigins  []string
	RateLimitRPS float64
	BodyLimit    string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: originsOrAny(d.CORSOrigins),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.Gzip())
	e.Use(echomiddleware.BodyLimit(orDefault(d.BodyLimit, defaultBodyLimit)))

	if d.MetricsRegisterer != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "sustainalink",
			Registerer: d.MetricsRegisterer,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.MetricsGatherer}))
	}

	// --- Health probes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	readiness := d.Readiness
	if readiness == nil {
		readiness = handlers.NewReadinessHandler(0)
	}
	e.GET("/health/ready", readiness.Readiness)
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api", rateLimiter(d.RateLimitRPS))
	authn := d.Authenticator
	authenticated := authn.Require()
	admin := authn.Require(domain.RoleAdmin)
	publisher := authn.Require(domain.RoleSupplier, domain.RoleAdmin)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(d.Auth)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.PUT("/reset-password/:token", authHandler.ResetPassword)
	auth.GET("/me", authHandler.Me, authenticated...)
	auth.PUT("/update-password", authHandler.UpdatePassword, authenticated...)
	auth.POST("/logout", authHandler.Logout, authenticated...)

	// --- Users ---
	userHandler := handler.NewUserHandler(d.Users)
	users := api.Group("/users")
	users.GET("", userHandler.List, admin...)
	users.GET("/:id", userHandler.Get, authenticated...)
	users.PUT("/:id", userHandler.Update, authenticated...)
	users.PATCH("/:id/deactivate", userHandler.Deactivate, admin...)

	// --- Products ---
	productHandler := handler.NewProductHandler(d.Products)
	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/barcode/:barcode", productHandler.GetByBarcode)
	products.GET("/qr/:qrCode", productHandler.GetByQRCode)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, publisher...)

	// --- Suppliers ---
	supplierHandler := handler.NewSupplierHandler(d.Suppliers)
	suppliers := api.Group("/suppliers")
	suppliers.GET("", supplierHandler.List)
	suppliers.GET("/:id", supplierHandler.Get)
	suppliers.POST("", supplierHandler.Create, admin...)

	// --- ESG reports ---
	esgHandler := handler.NewESGHandler(d.Reports)
	esg := api.Group("/esg")
	esg.GET("", esgHandler.List)
	esg.GET("/supplier/:supplierId", esgHandler.ListBySupplier)
	esg.POST("", esgHandler.Create, publisher...)

	// --- Rewards ---
	rewardHandler := handler.NewRewardHandler(d.Rewards)
	rewards := api.Group("/rewards")
	rewards.GET("", rewardHandler.List)
	rewards.GET("/stats", rewardHandler.Stats, authenticated...)
	rewards.POST("", rewardHandler.Create, admin...)

	// --- AI assistants ---
	aiHandler := handler.NewAIHandler(d.AI)
	ai := api.Group("/ai", authenticated...)
	ai.POST("/recommendations", aiHandler.Recommendations)
	ai.POST("/chat", aiHandler.Chat)
	ai.POST("/analyze-product", aiHandler.AnalyzeProduct)
	ai.POST("/generate-esg-report", aiHandler.GenerateESGReport)
	ai.POST("/optimize-supply-chain", aiHandler.OptimizeSupplyChain)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				event = log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func rateLimiter(rps float64) echo.MiddlewareFunc {
	if rps <= 0 {
		rps = defaultRateRPS
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(rps),
			Burst:     int(rps * 2),
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, errorResponse{Success: false, Message: "Unable to identify client"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{
				Success: false,
				Message: "Too many requests from this IP, please try again later.",
			})
		},
	})
}

func originsOrAny(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
