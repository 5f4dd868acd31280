package service

import (
	"context"
	"regexp"

	"music-store-backend/internal/apperr"
	"music-store-backend/internal/dto"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactService interface {
	Submit(ctx context.Context, submission *dto.ContactRequest) error
}

type contactServiceImpl struct {
	notifications NotificationService
}

func NewContactService(notifications NotificationService) ContactService {
	return &contactServiceImpl{notifications: notifications}
}

// Submit validates the submission and sends the business-facing relay
// followed by the customer auto-reply. Either send failing fails the
// whole operation; no partial success is reported.
func (s *contactServiceImpl) Submit(ctx context.Context, submission *dto.ContactRequest) error {
	if submission.Name == "" || submission.Email == "" || submission.Message == "" {
		return apperr.Validation("name, email, and message are required")
	}
	if !emailPattern.MatchString(submission.Email) {
		return apperr.Validation("please provide a valid email address")
	}
	if submission.ProjectType == "" {
		submission.ProjectType = "Not specified"
	}

	if err := s.notifications.SendContactFormEmail(ctx, submission); err != nil {
		return err
	}

	return s.notifications.SendContactAutoReply(ctx, submission)
}
