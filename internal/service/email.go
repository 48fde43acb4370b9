package service

import (
	"context"
	"fmt"
	"time"

	"itemshare-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendBookingRequestedNotification(ctx context.Context, to, bookerName, itemName string) error {
	body := fmt.Sprintf("Hello,\n\n%s requested to book your item %q. Please approve or reject the booking.\n", bookerName, itemName)
	return s.send(to, "New booking request", body)
}

func (s *sendGridEmailService) SendBookingDecidedNotification(ctx context.Context, to, itemName string, approved bool) error {
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	body := fmt.Sprintf("Hello,\n\nYour booking request for %q was %s by the owner.\n", itemName, decision)
	return s.send(to, fmt.Sprintf("Booking %s", decision), body)
}

func (s *sendGridEmailService) SendUpcomingBookingReminder(ctx context.Context, to, itemName string, start time.Time) error {
	body := fmt.Sprintf("Hello,\n\nA reminder: your booking of %q starts at %s.\n", itemName, start.Format(time.RFC1123))
	return s.send(to, "Upcoming booking", body)
}

func (s *sendGridEmailService) SendPendingApprovalReminder(ctx context.Context, to, itemName, bookerName string) error {
	body := fmt.Sprintf("Hello,\n\n%s is still waiting for your decision on a booking request for %q.\n", bookerName, itemName)
	return s.send(to, "Booking request awaiting decision", body)
}

// logEmailService writes notifications to the log instead of sending
// mail. Used in development when no SendGrid key is configured.
type logEmailService struct{}

func NewLogEmailService() EmailService {
	return &logEmailService{}
}

func (s *logEmailService) SendBookingRequestedNotification(ctx context.Context, to, bookerName, itemName string) error {
	logger.Info("email: booking requested", "to", to, "booker", bookerName, "item", itemName)
	return nil
}

func (s *logEmailService) SendBookingDecidedNotification(ctx context.Context, to, itemName string, approved bool) error {
	logger.Info("email: booking decided", "to", to, "item", itemName, "approved", approved)
	return nil
}

func (s *logEmailService) SendUpcomingBookingReminder(ctx context.Context, to, itemName string, start time.Time) error {
	logger.Info("email: upcoming booking reminder", "to", to, "item", itemName, "start", start)
	return nil
}

func (s *logEmailService) SendPendingApprovalReminder(ctx context.Context, to, itemName, bookerName string) error {
	logger.Info("email: pending approval reminder", "to", to, "item", itemName, "booker", bookerName)
	return nil
}
