package service

import (
	"context"
	"encoding/json"

	"music-store-backend/internal/apperr"
	"music-store-backend/internal/client"
	"music-store-backend/internal/repository"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// WebhookService reconciles signed Stripe event deliveries. Verification
// failure is the only error it surfaces; once a delivery verifies, it is
// always acknowledged so Stripe does not retry a completed payment.
type WebhookService interface {
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

type webhookServiceImpl struct {
	stripeClient     client.StripeClient
	notifications    NotificationService
	webhookEventRepo repository.WebhookEventRepository
	logger           *zap.Logger
}

func NewWebhookService(
	stripeClient client.StripeClient,
	notifications NotificationService,
	webhookEventRepo repository.WebhookEventRepository,
	logger *zap.Logger,
) WebhookService {
	return &webhookServiceImpl{
		stripeClient:     stripeClient,
		notifications:    notifications,
		webhookEventRepo: webhookEventRepo,
		logger:           logger,
	}
}

func (s *webhookServiceImpl) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.stripeClient.ConstructEvent(payload, sigHeader)
	if err != nil {
		return apperr.SignatureInvalid(err)
	}

	// Stripe delivers at least once; skip dispatch for an event we have
	// already handled. The store is best effort and never blocks the ack.
	seen, err := s.webhookEventRepo.Exists(ctx, event.ID)
	if err != nil {
		s.logger.Warn("webhook dedup lookup failed",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}
	if seen {
		s.logger.Info("skipping duplicate webhook delivery",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
		)
		return nil
	}

	switch event.Type {
	case "checkout.session.completed":
		s.handleCheckoutCompleted(ctx, event)
	case "payment_intent.payment_failed":
		s.handlePaymentFailed(event)
	default:
		s.logger.Info("ignoring unhandled webhook event type",
			zap.String("event_type", string(event.Type)),
		)
	}

	if err := s.webhookEventRepo.MarkProcessed(ctx, event.ID, string(event.Type)); err != nil {
		s.logger.Warn("failed to record processed webhook event",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}

	return nil
}

// handleCheckoutCompleted sends the customer confirmation and the admin
// alert. Mail failures are logged but never fail the webhook response: a
// non-2xx here would make Stripe retry an already-completed payment.
func (s *webhookServiceImpl) handleCheckoutCompleted(ctx context.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		s.logger.Error("failed to decode checkout session from webhook",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("payment successful",
		zap.String("session_id", session.ID),
		zap.String("package_type", session.Metadata["packageType"]),
	)

	if err := s.notifications.SendOrderConfirmation(ctx, &session); err != nil {
		s.logger.Error("order confirmation email failed",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}
	if err := s.notifications.SendAdminNotification(ctx, &session); err != nil {
		s.logger.Error("admin notification email failed",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}
}

func (s *webhookServiceImpl) handlePaymentFailed(event stripe.Event) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		s.logger.Error("failed to decode payment intent from webhook",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return
	}

	s.logger.Warn("payment failed", zap.String("payment_intent_id", intent.ID))
}
