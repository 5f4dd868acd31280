package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"music-store-backend/internal/client"
	"music-store-backend/internal/config"
	"music-store-backend/internal/dto"
	"music-store-backend/internal/handler"
	"music-store-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap/zaptest"
)

type stubNotifications struct{ err error }

func (s *stubNotifications) SendOrderConfirmation(ctx context.Context, session *stripe.CheckoutSession) error {
	return s.err
}
func (s *stubNotifications) SendAdminNotification(ctx context.Context, session *stripe.CheckoutSession) error {
	return s.err
}
func (s *stubNotifications) SendContactFormEmail(ctx context.Context, submission *dto.ContactRequest) error {
	return s.err
}
func (s *stubNotifications) SendContactAutoReply(ctx context.Context, submission *dto.ContactRequest) error {
	return s.err
}

type stubCheckout struct{ err error }

func (s *stubCheckout) BuildSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.CheckoutResponse{SessionID: "cs_1", URL: "https://checkout.stripe.com/cs_1"}, nil
}
func (s *stubCheckout) GetOrder(ctx context.Context, sessionID string) (*dto.OrderResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.OrderResponse{PackageType: "basic", PaymentStatus: "paid"}, nil
}

type stubWebhook struct{ err error }

func (s *stubWebhook) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	return s.err
}

type stubStripe struct{}

func (s *stubStripe) CreateCheckoutSession(ctx context.Context, params *client.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return nil, errors.New("not implemented")
}
func (s *stubStripe) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	return nil, errors.New("not implemented")
}
func (s *stubStripe) GetAccount(ctx context.Context) (*stripe.Account, error) {
	return &stripe.Account{}, nil
}
func (s *stubStripe) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return stripe.Event{}, errors.New("not implemented")
}

func newTestServer(t *testing.T) *Server {
	cfg := &config.Config{
		FrontendURL: "https://example.com",
		Environment: config.Environment{Name: "test"},
		Stripe:      config.Stripe{SecretKey: "sk_test_xxx"},
	}

	contactSvc := service.NewContactService(&stubNotifications{})
	paymentHandler := handler.NewPaymentHandler(&stubCheckout{}, &stubWebhook{}, &stubStripe{}, cfg.Stripe.SecretKey)
	contactHandler := handler.NewContactHandler(contactSvc)

	return NewServer(cfg, zaptest.NewLogger(t), paymentHandler, contactHandler)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)
	assert.Contains(t, rec.Body.String(), `"stripeConfigured":true`)
	assert.Contains(t, rec.Body.String(), `"emailConfigured":false`)
}

func TestUnknownRouteReturnsStructured404(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"endpoint not found"}`, rec.Body.String())
}

func TestContactValidationError(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"not-an-email","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valid email")
}

func TestContactSuccess(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"a@b.co","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestCreateCheckoutSessionRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session",
		strings.NewReader(`{"packageType":"basic","price":50}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cs_1")
}
