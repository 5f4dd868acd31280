package service

import (
	"context"

	"music-store-backend/internal/client"
	"music-store-backend/internal/dto"

	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v80"
)

type MockStripeClient struct{ mock.Mock }

func (m *MockStripeClient) CreateCheckoutSession(ctx context.Context, params *client.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockStripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockStripeClient) GetAccount(ctx context.Context) (*stripe.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Account), args.Error(1)
}

func (m *MockStripeClient) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	args := m.Called(payload, sigHeader)
	return args.Get(0).(stripe.Event), args.Error(1)
}

type MockMailClient struct{ mock.Mock }

func (m *MockMailClient) Send(ctx context.Context, msg *client.MailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) SendOrderConfirmation(ctx context.Context, session *stripe.CheckoutSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockNotificationService) SendAdminNotification(ctx context.Context, session *stripe.CheckoutSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockNotificationService) SendContactFormEmail(ctx context.Context, submission *dto.ContactRequest) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockNotificationService) SendContactAutoReply(ctx context.Context, submission *dto.ContactRequest) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

type MockWebhookEventRepository struct{ mock.Mock }

func (m *MockWebhookEventRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebhookEventRepository) MarkProcessed(ctx context.Context, eventID, eventType string) error {
	args := m.Called(ctx, eventID, eventType)
	return args.Error(0)
}
