package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"music-store-backend/internal/apperr"
	"music-store-backend/internal/client"
	"music-store-backend/internal/dto"
	"music-store-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	checkoutService service.CheckoutService
	webhookService  service.WebhookService
	stripeClient    client.StripeClient
	stripeTestMode  bool
}

func NewPaymentHandler(
	checkoutService service.CheckoutService,
	webhookService service.WebhookService,
	stripeClient client.StripeClient,
	stripeSecretKey string,
) *PaymentHandler {
	return &PaymentHandler{
		checkoutService: checkoutService,
		webhookService:  webhookService,
		stripeClient:    stripeClient,
		stripeTestMode:  strings.Contains(stripeSecretKey, "test"),
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	resp, err := h.checkoutService.BuildSession(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// StripeWebhook hands the raw, unparsed body to the reconciler; signature
// verification needs the exact bytes Stripe signed. A signature failure
// answers with plain text so Stripe surfaces the reason in its dashboard.
func (h *PaymentHandler) StripeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, "Webhook Error: unreadable body")
	}

	sigHeader := c.Request().Header.Get("Stripe-Signature")

	if err := h.webhookService.HandleEvent(ctx, payload, sigHeader); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Err != nil {
			return c.String(http.StatusBadRequest, "Webhook Error: "+appErr.Err.Error())
		}
		return c.String(http.StatusBadRequest, "Webhook Error: "+err.Error())
	}

	return c.JSON(http.StatusOK, dto.WebhookResponse{Received: true})
}

func (h *PaymentHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.checkoutService.GetOrder(ctx, c.Param("sessionId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// StripeTest verifies the Stripe credentials by retrieving the account.
func (h *PaymentHandler) StripeTest(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.stripeClient.GetAccount(ctx); err != nil {
		return apperr.Gateway("stripe connection failed", err)
	}

	mode := "live"
	if h.stripeTestMode {
		mode = "test"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "connected",
		"mode":    mode,
		"message": "Stripe is properly configured",
	})
}
