package utils

import (
	"fmt"
	"strings"

	"github.com/keighl/postmark"

	"brandm-backend/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(serverToken, sender string) *EmailService {
	return &EmailService{
		client: postmark.NewClient(serverToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmation sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmation(toEmail string, order *models.Order) error {
	subject := "Order Confirmation"

	var lines strings.Builder
	for _, item := range order.OrderItems {
		fmt.Fprintf(&lines, "<li>%s x%d - $%.2f</li>", item.Name, item.Quantity, item.Price)
	}

	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your purchase! Your order (ID: %s) has been placed successfully.<br><br><ul>%s</ul>Total Amount: <strong>$%.2f</strong><br><br>Thank you for shopping with us!",
		order.ID.Hex(),
		lines.String(),
		order.TotalPrice,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
