package service

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"music-store-backend/internal/apperr"
	"music-store-backend/internal/client"
	"music-store-backend/internal/config"
	"music-store-backend/internal/dto"

	"github.com/stripe/stripe-go/v80"
)

// NotificationService formats and sends the three transactional message
// kinds: customer order confirmation, admin order alert, and the
// contact-form relay plus auto-reply.
type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, session *stripe.CheckoutSession) error
	SendAdminNotification(ctx context.Context, session *stripe.CheckoutSession) error
	SendContactFormEmail(ctx context.Context, submission *dto.ContactRequest) error
	SendContactAutoReply(ctx context.Context, submission *dto.ContactRequest) error
}

type notificationServiceImpl struct {
	mailClient   client.MailClient
	businessName string
	adminEmail   string
	frontendURL  string
}

func NewNotificationService(mailClient client.MailClient, cfg *config.Config) NotificationService {
	return &notificationServiceImpl{
		mailClient:   mailClient,
		businessName: cfg.Business.Name,
		adminEmail:   cfg.AdminEmail(),
		frontendURL:  cfg.FrontendURL,
	}
}

var orderConfirmationTmpl = template.Must(template.New("orderConfirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Thank You for Your Order!</h1>
  <p>Hi there,</p>
  <p>We've received your order and our AI is already hard at work creating your custom music!</p>
  <h2>Order Details</h2>
  <p><strong>Package:</strong> {{.PackageName}} Package</p>
  <p><strong>Original Price:</strong> &pound;{{.OriginalPrice}}</p>
  {{if .HasDiscount}}
  <p><strong>Discount Applied:</strong> {{.DiscountCode}} (-&pound;{{.DiscountAmount}})</p>
  <p><strong>Final Price:</strong> &pound;{{.TotalPaid}}</p>
  {{else}}
  <p><strong>Total Paid:</strong> &pound;{{.TotalPaid}}</p>
  {{end}}
  <h3>What Happens Next?</h3>
  <ol>
    <li>Our AI will generate your custom track within 48-72 hours</li>
    <li>You'll receive an email with download links once ready</li>
    <li>Your track comes with full commercial rights</li>
  </ol>
  <p>Need to make changes or have questions? Just reply to this email!</p>
  <p>{{.BusinessName}} - AI-Powered Music Creation</p>
</div>`))

var adminNotificationTmpl = template.Must(template.New("adminNotification").Parse(`
<h2>New Order Received!</h2>
<p><strong>Customer Email:</strong> {{.CustomerEmail}}</p>
<p><strong>Package:</strong> {{.PackageType}}</p>
<p><strong>Amount:</strong> &pound;{{.TotalPaid}}</p>
<p><strong>Discount Used:</strong> {{.DiscountCode}}</p>
<p><strong>Session ID:</strong> {{.SessionID}}</p>
<hr>
<p>Log into the Stripe dashboard to view full details.</p>`))

var contactFormTmpl = template.Must(template.New("contactForm").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Project Type:</strong> {{.ProjectType}}</p>
<hr>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p style="font-size: 12px; color: #666;">You can reply directly to this email to respond to the customer.</p>`))

var contactAutoReplyTmpl = template.Must(template.New("contactAutoReply").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Thank you for contacting {{.BusinessName}}!</h2>
  <p>Hi {{.Name}},</p>
  <p>We've received your message and will get back to you within 24 hours.</p>
  <p>In the meantime, feel free to browse our <a href="{{.FrontendURL}}/samples">sample library</a>
  or our <a href="{{.FrontendURL}}/pricing">pricing calculator</a>.</p>
  <p>Best regards,<br>The {{.BusinessName}} Team</p>
</div>`))

func (s *notificationServiceImpl) SendOrderConfirmation(ctx context.Context, session *stripe.CheckoutSession) error {
	email := customerEmail(session)
	if email == "" {
		return fmt.Errorf("session %s has no customer email", session.ID)
	}

	discountCode := session.Metadata["discountCode"]
	data := struct {
		BusinessName   string
		PackageName    string
		OriginalPrice  string
		HasDiscount    bool
		DiscountCode   string
		DiscountAmount string
		TotalPaid      string
	}{
		BusinessName:   s.businessName,
		PackageName:    capitalize(session.Metadata["packageType"]),
		OriginalPrice:  session.Metadata["originalPrice"],
		HasDiscount:    discountCode != "" && discountCode != "none",
		DiscountCode:   discountCode,
		DiscountAmount: session.Metadata["discountAmount"],
		TotalPaid:      majorUnits(session.AmountTotal),
	}

	body, err := render(orderConfirmationTmpl, data)
	if err != nil {
		return err
	}

	err = s.mailClient.Send(ctx, &client.MailMessage{
		FromName: s.businessName,
		To:       email,
		Subject:  "Order Confirmation - Your AI Music is Being Created!",
		HTMLBody: body,
	})
	if err != nil {
		return apperr.MailDelivery(err)
	}

	return nil
}

func (s *notificationServiceImpl) SendAdminNotification(ctx context.Context, session *stripe.CheckoutSession) error {
	packageType := session.Metadata["packageType"]
	discountCode := session.Metadata["discountCode"]
	if discountCode == "" {
		discountCode = "none"
	}

	data := struct {
		CustomerEmail string
		PackageType   string
		TotalPaid     string
		DiscountCode  string
		SessionID     string
	}{
		CustomerEmail: customerEmail(session),
		PackageType:   packageType,
		TotalPaid:     majorUnits(session.AmountTotal),
		DiscountCode:  discountCode,
		SessionID:     session.ID,
	}

	body, err := render(adminNotificationTmpl, data)
	if err != nil {
		return err
	}

	err = s.mailClient.Send(ctx, &client.MailMessage{
		FromName: s.businessName + " System",
		To:       s.adminEmail,
		Subject:  fmt.Sprintf("New Order: %s Package - £%s", packageType, data.TotalPaid),
		HTMLBody: body,
	})
	if err != nil {
		return apperr.MailDelivery(err)
	}

	return nil
}

func (s *notificationServiceImpl) SendContactFormEmail(ctx context.Context, submission *dto.ContactRequest) error {
	data := struct {
		Name        string
		Email       string
		ProjectType string
		Message     template.HTML
	}{
		Name:        submission.Name,
		Email:       submission.Email,
		ProjectType: submission.ProjectType,
		Message:     multiline(submission.Message),
	}

	body, err := render(contactFormTmpl, data)
	if err != nil {
		return err
	}

	err = s.mailClient.Send(ctx, &client.MailMessage{
		FromName: s.businessName + " Contact Form",
		To:       s.adminEmail,
		ReplyTo:  submission.Email,
		Subject:  fmt.Sprintf("New Contact Form Submission - %s", submission.ProjectType),
		HTMLBody: body,
	})
	if err != nil {
		return apperr.MailDelivery(err)
	}

	return nil
}

func (s *notificationServiceImpl) SendContactAutoReply(ctx context.Context, submission *dto.ContactRequest) error {
	data := struct {
		BusinessName string
		Name         string
		FrontendURL  string
	}{
		BusinessName: s.businessName,
		Name:         submission.Name,
		FrontendURL:  s.frontendURL,
	}

	body, err := render(contactAutoReplyTmpl, data)
	if err != nil {
		return err
	}

	err = s.mailClient.Send(ctx, &client.MailMessage{
		FromName: s.businessName,
		To:       submission.Email,
		Subject:  fmt.Sprintf("We've Received Your Message - %s", s.businessName),
		HTMLBody: body,
	})
	if err != nil {
		return apperr.MailDelivery(err)
	}

	return nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}

// customerEmail prefers the email the session was created with, falling
// back to what the customer entered during checkout.
func customerEmail(session *stripe.CheckoutSession) string {
	if session.CustomerEmail != "" {
		return session.CustomerEmail
	}
	if session.CustomerDetails != nil {
		return session.CustomerDetails.Email
	}
	return ""
}

func majorUnits(amountMinor int64) string {
	return fmt.Sprintf("%.2f", float64(amountMinor)/100)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// multiline escapes user text and converts newlines to <br> so the
// message keeps its line structure in the HTML body.
func multiline(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
