package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"music-store-backend/internal/apperr"
	"music-store-backend/internal/config"
	"music-store-backend/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo           *echo.Echo
	cfg            *config.Config
	logger         *zap.Logger
	paymentHandler *handler.PaymentHandler
	contactHandler *handler.ContactHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	paymentHandler *handler.PaymentHandler,
	contactHandler *handler.ContactHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true

	s := &Server{
		echo:           e,
		cfg:            cfg,
		logger:         logger,
		paymentHandler: paymentHandler,
		contactHandler: contactHandler,
	}

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{
			cfg.FrontendURL,
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowCredentials: true,
	}))
	e.Use(s.requestLogger())

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.health)

	api := s.echo.Group("/api")
	api.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	api.POST("/contact", s.contactHandler.SubmitContactForm)

	// -------- payments --------
	api.GET("/stripe-test", s.paymentHandler.StripeTest)
	api.POST("/create-checkout-session", s.paymentHandler.CreateCheckoutSession)
	api.GET("/order/:sessionId", s.paymentHandler.GetOrder)

	// -------- stripe webhooks --------
	api.POST("/webhook/stripe", s.paymentHandler.StripeWebhook)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":           "OK",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"emailConfigured":  s.cfg.MailConfigured(),
		"stripeConfigured": s.cfg.StripeConfigured(),
	})
}

// handleError is the single translation point from the error taxonomy to
// HTTP responses. Gateway details are echoed only outside production.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			s.logger.Error("request failed",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		resp := map[string]string{"error": appErr.Message}
		if appErr.Err != nil && !s.cfg.Environment.IsProduction() {
			resp["details"] = appErr.Err.Error()
		}
		if jsonErr := c.JSON(appErr.Status, resp); jsonErr != nil {
			s.logger.Error("failed to write error response", zap.Error(jsonErr))
		}
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if httpErr.Code == http.StatusNotFound {
			message = "endpoint not found"
		}
		if jsonErr := c.JSON(httpErr.Code, map[string]string{"error": message}); jsonErr != nil {
			s.logger.Error("failed to write error response", zap.Error(jsonErr))
		}
		return
	}

	s.logger.Error("unhandled error",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	if jsonErr := c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"}); jsonErr != nil {
		s.logger.Error("failed to write error response", zap.Error(jsonErr))
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request completed",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
