package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"matrimony-be/internal/config"
)

type Service interface {
	SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error
	SendProposalReceivedEmail(ctx context.Context, toEmail, recipientName, senderName string) error
	SendProfileReviewedEmail(ctx context.Context, toEmail, fullName, outcome string, reason *string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

func (s *service) sendEmail(toEmail, subject, bodyTemplate string, data interface{}) error {
	tmpl, err := template.New("email").Parse(layoutTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email layout: %w", err)
	}
	if _, err := tmpl.Parse(bodyTemplate); err != nil {
		return fmt.Errorf("failed to parse email body template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Matrimony <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: "Verify your email",
		Name:  fullName,
		Link:  fmt.Sprintf("https://%s/verify-email?token=%s", s.config.Domain, verificationToken),
	}
	return s.sendEmail(toEmail, "Verify your email address", verificationTemplate, data)
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: "Reset your password",
		Name:  fullName,
		Link:  fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken),
	}
	return s.sendEmail(toEmail, "Password reset request", passwordResetTemplate, data)
}

func (s *service) SendProposalReceivedEmail(ctx context.Context, toEmail, recipientName, senderName string) error {
	data := struct {
		Title      string
		Name       string
		SenderName string
		Link       string
	}{
		Title:      "You have a new proposal",
		Name:       recipientName,
		SenderName: senderName,
		Link:       fmt.Sprintf("https://%s/proposals", s.config.Domain),
	}
	return s.sendEmail(toEmail, "You have received a new proposal", proposalReceivedTemplate, data)
}

func (s *service) SendProfileReviewedEmail(ctx context.Context, toEmail, fullName, outcome string, reason *string) error {
	data := struct {
		Title   string
		Name    string
		Outcome string
		Reason  *string
		Link    string
	}{
		Title:   "Your profile has been reviewed",
		Name:    fullName,
		Outcome: outcome,
		Reason:  reason,
		Link:    fmt.Sprintf("https://%s/profile", s.config.Domain),
	}
	return s.sendEmail(toEmail, "Profile review update", profileReviewedTemplate, data)
}
