package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"music-store-backend/internal/apperr"
	"music-store-backend/internal/client"
	"music-store-backend/internal/discount"
	"music-store-backend/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
)

// packageDescriptions maps a package type to the line-item copy shown in
// Stripe checkout. Unknown types fall back to a generic description.
var packageDescriptions = map[string]string{
	"basic":      "Basic Package - 30 second AI-generated track",
	"standard":   "Standard Package - 60 second professional soundtrack",
	"premium":    "Premium Package - Complete audio branding suite",
	"enterprise": "Enterprise Package - Custom solution",
}

const fallbackDescription = "Custom AI-generated music"

type CheckoutService interface {
	BuildSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	GetOrder(ctx context.Context, sessionID string) (*dto.OrderResponse, error)
}

type checkoutServiceImpl struct {
	stripeClient client.StripeClient
	evaluator    *discount.Evaluator
	businessName string
	frontendURL  string
}

func NewCheckoutService(
	stripeClient client.StripeClient,
	evaluator *discount.Evaluator,
	businessName string,
	frontendURL string,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
		evaluator:    evaluator,
		businessName: businessName,
		frontendURL:  frontendURL,
	}
}

// BuildSession validates the order request, applies any discount code and
// creates a Stripe checkout session. The discount inputs are attached as
// session metadata so the webhook reconciler can reproduce them without
// re-deriving the discount.
func (s *checkoutServiceImpl) BuildSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if req.PackageType == "" || req.Price <= 0 {
		return nil, apperr.Validation("package type and price are required")
	}

	originalPrice := decimal.NewFromFloat(req.Price)
	chargeAmount := originalPrice

	var applied *discount.Applied
	if req.DiscountCode != "" {
		outcome := s.evaluator.Evaluate(originalPrice, req.DiscountCode)
		chargeAmount = outcome.FinalPrice
		applied = outcome.Applied
	}

	metadata := map[string]string{
		"packageType":    req.PackageType,
		"originalPrice":  originalPrice.StringFixed(2),
		"discountCode":   "none",
		"discountAmount": "0",
	}
	if applied != nil {
		metadata["discountCode"] = applied.Code
		metadata["discountAmount"] = applied.Amount.StringFixed(2)
	}

	description, ok := packageDescriptions[req.PackageType]
	if !ok {
		description = fallbackDescription
	}

	session, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CheckoutSessionParams{
		AmountMinor:        minorUnits(chargeAmount),
		Currency:           "gbp",
		ProductName:        fmt.Sprintf("%s - %s Package", s.businessName, capitalize(req.PackageType)),
		ProductDescription: description,
		CustomerEmail:      req.CustomerEmail,
		SuccessURL:         s.frontendURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          s.frontendURL + "/pricing",
		Metadata:           metadata,
	})
	if err != nil {
		return nil, apperr.Gateway("failed to create checkout session", err)
	}

	resp := &dto.CheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}
	if applied != nil {
		resp.AppliedDiscount = &dto.AppliedDiscount{
			Code:        applied.Code,
			Amount:      applied.Amount.InexactFloat64(),
			Description: applied.Description,
		}
	}

	return resp, nil
}

// GetOrder looks the session up at the gateway for the success page.
// Order context lives only in session metadata, so this is a pass-through.
func (s *checkoutServiceImpl) GetOrder(ctx context.Context, sessionID string) (*dto.OrderResponse, error) {
	if sessionID == "" {
		return nil, apperr.Validation("session id is required")
	}

	session, err := s.stripeClient.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, apperr.NotFound("session not found")
		}
		return nil, apperr.Gateway("failed to retrieve order details", err)
	}

	return &dto.OrderResponse{
		CustomerEmail: customerEmail(session),
		AmountTotal:   float64(session.AmountTotal) / 100,
		PackageType:   session.Metadata["packageType"],
		PaymentStatus: string(session.PaymentStatus),
	}, nil
}

// minorUnits converts a decimal currency amount to the gateway's integer
// representation, rounding to the nearest minor unit.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
