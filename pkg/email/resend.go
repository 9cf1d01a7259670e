package email

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *zap.Logger
}

func NewEmailService(logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:         os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName:     os.Getenv("EMAIL_FROM_NAME"),
		templatesDir: "pkg/email/templates",
		logger:       logger,
	}
}

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	templateData := map[string]interface{}{
		"FullName": fullName,
		"Email":    email,
		"Year":     time.Now().Year(),
	}

	return s.send(email, "Welcome to Coworkly!", "welcome.html", templateData)
}

func (s *EmailService) SendPasswordResetEmail(email string, resetToken string) error {
	resetLink := os.Getenv("FRONTEND_URL") + "/reset-password?token=" + resetToken

	templateData := map[string]interface{}{
		"ResetLink": resetLink,
		"Email":     email,
		"Year":      time.Now().Year(),
	}

	return s.send(email, "Reset Your Password - Coworkly", "reset-password.html", templateData)
}

func (s *EmailService) SendBookingConfirmation(email, fullName, roomName, date, startTime, endTime string) error {
	templateData := map[string]interface{}{
		"FullName":  fullName,
		"RoomName":  roomName,
		"Date":      date,
		"StartTime": startTime,
		"EndTime":   endTime,
		"Year":      time.Now().Year(),
	}

	return s.send(email, "Booking Confirmed - Coworkly", "booking-confirmation.html", templateData)
}

// SendInquiryNotification alerts the configured address about a new inquiry.
func (s *EmailService) SendInquiryNotification(fullName, fromEmail, subject, message string) error {
	to := os.Getenv("INQUIRY_NOTIFY_ADDRESS")
	if to == "" {
		to = s.from
	}

	templateData := map[string]interface{}{
		"FullName": fullName,
		"Email":    fromEmail,
		"Subject":  subject,
		"Message":  message,
		"Year":     time.Now().Year(),
	}

	return s.send(to, "New Inquiry: "+subject, "inquiry-notification.html", templateData)
}

func (s *EmailService) send(to, subject, templateName string, data interface{}) error {
	html, err := s.parseTemplate(templateName, data)
	if err != nil {
		s.logger.Error("Failed to parse email template",
			zap.String("template", templateName),
			zap.Error(err),
		)
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("id", resp.Id),
	)
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateName)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", templateName, err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", templateName, err)
	}

	return body.String(), nil
}
