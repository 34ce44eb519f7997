package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"budgethero/internal/config"
	"budgethero/internal/handlers"
	"budgethero/internal/middleware"
	"budgethero/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups the HTTP handlers mounted by New
type Handlers struct {
	Classification *handlers.ClassificationHandler
	Transactions   *handlers.TransactionHandler
	Recurring      *handlers.RecurringMerchantHandler
	Imports        *handlers.ImportHandler
	Plaid          *handlers.PlaidHandler
	Admin          *handlers.AdminHandler
	Health         *handlers.HealthCheckHandler
	Docs           *handlers.DocsHandler
	// Validator defaults to the built-in category names when nil
	Validator echo.Validator
}

// New builds the echo instance with the middleware chain and all routes
func New(cfg *config.Config, h Handlers, tokenService services.TokenServiceInterface, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = h.Validator
	if e.Validator == nil {
		e.Validator = handlers.NewValidator()
	}
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
		MaxAge:        3600,
	}))
	e.Use(middleware.RateLimiter(cfg.Security))

	RegisterRoutes(e, h, tokenService)
	return e
}

// RegisterRoutes mounts the public endpoints and the authenticated /api/v1 group.
// Static segments are registered before /:id so they are never parsed as IDs.
func RegisterRoutes(e *echo.Echo, h Handlers, tokenService services.TokenServiceInterface) {
	if h.Health != nil {
		e.GET("/health", h.Health.HealthCheck)
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if h.Docs != nil {
		e.GET("/docs", h.Docs.ServeScalarUI)
		e.GET("/docs/openapi.json", h.Docs.ServeOAS3JSON)
	}

	api := e.Group("/api/v1", middleware.RequireAuth(tokenService))

	api.POST("/classify", h.Classification.Classify)
	api.POST("/classify/confidence", h.Classification.Confidence)
	api.GET("/categories", h.Classification.Categories)

	txns := api.Group("/transactions")
	txns.GET("", h.Transactions.ListTransactions)
	txns.POST("", h.Transactions.CreateTransaction)
	txns.GET("/review", h.Transactions.GetReviewQueue)
	txns.GET("/summary", h.Transactions.GetCategorySummary)
	txns.POST("/reclassify", h.Transactions.Reclassify)
	txns.GET("/:id", h.Transactions.GetTransaction)
	txns.PATCH("/:id/category", h.Transactions.UpdateCategory)
	txns.PATCH("/:id/recurring", h.Transactions.UpdateRecurring)

	merchants := api.Group("/recurring-merchants")
	merchants.GET("", h.Recurring.ListMerchants)
	merchants.POST("", h.Recurring.CreateMerchant)
	merchants.POST("/deactivate", h.Recurring.DeactivateMerchant)
	merchants.POST("/detect", h.Recurring.DetectMerchants)

	imports := api.Group("/imports")
	imports.GET("", h.Imports.ListImports)
	imports.POST("/csv", h.Imports.ImportCSV)
	imports.POST("/ofx", h.Imports.ImportOFX)

	plaid := api.Group("/plaid")
	plaid.POST("/link-token", h.Plaid.CreateLinkToken)
	plaid.POST("/exchange", h.Plaid.ExchangePublicToken)
	plaid.POST("/items/:id/sync", h.Plaid.SyncItem)

	api.GET("/activity", h.Admin.ListActivity)
	api.GET("/activity/:resource/:resourceId", h.Admin.ListResourceHistory)
	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.GET("/users/:userId/activity", h.Admin.ListUserActivity)
	admin.GET("/activity/:resource/:resourceId", h.Admin.ListAnyResourceHistory)
}

// Run serves until ctx is cancelled, then drains in-flight requests
func Run(ctx context.Context, e *echo.Echo, cfg config.ServerConfig, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
