package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"saaarchi/models"
)

// ResendSender delivers messages through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender returns a sender for apiKey. An empty key is accepted here
// and reported as missing configuration on the first Send.
func NewResendSender(apiKey string) *ResendSender {
	if apiKey == "" {
		return &ResendSender{}
	}
	return &ResendSender{client: resend.NewClient(apiKey)}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if s.client == nil {
		return models.MissingConfig("RESEND_API_KEY")
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	log.Printf("Contact email sent: id=%s", sent.Id)
	return nil
}
