package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"saaarchi/models"
)

const (
	// MissingFieldsMessage is reported when a required contact field is blank.
	MissingFieldsMessage = "Tous les champs obligatoires doivent être remplis"
	// SuccessMessage is shown to the visitor once the message is sent.
	SuccessMessage = "Votre message a été envoyé avec succès. Nous vous contacterons bientôt."
	// FailureMessage is shown when delivery failed for any reason.
	FailureMessage = "Une erreur est survenue lors de l'envoi du message. Veuillez réessayer."

	phonePlaceholder = "Non fourni"
	subjectPrefix    = "Nouveau message: "
)

// ErrSendFailed is returned when the email provider rejects or cannot be reached.
var ErrSendFailed = errors.New("contact message could not be sent")

// Message is a plain-text email ready for delivery.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Sender delivers a message through an email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier turns contact form submissions into emails to the firm.
type Notifier struct {
	sender Sender
	from   string
	to     string
}

func NewNotifier(sender Sender, from, to string) *Notifier {
	return &Notifier{sender: sender, from: from, to: to}
}

// Validate checks that name, email, subject and message are present.
func Validate(req models.ContactRequest) error {
	var fields []models.FieldError
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"subject", req.Subject},
		{"message", req.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, models.FieldError{Field: f.name, Message: MissingFieldsMessage})
		}
	}
	return models.NewValidationError(fields)
}

// FormatBody renders the plain-text email body for a submission.
func FormatBody(req models.ContactRequest) string {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = phonePlaceholder
	}

	var b strings.Builder
	b.WriteString("Nouveau message de contact depuis le site SAA ARCHI\n\n")
	fmt.Fprintf(&b, "Nom: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Téléphone: %s\n", phone)
	fmt.Fprintf(&b, "Sujet: %s\n\n", req.Subject)
	b.WriteString("Message:\n")
	b.WriteString(req.Message)
	b.WriteString("\n\n---\n")
	b.WriteString("Ce message a été envoyé depuis le formulaire de contact du site web SAA ARCHI.")
	return b.String()
}

// Notify validates the submission and sends it with the submitter as reply-to.
func (n *Notifier) Notify(ctx context.Context, req models.ContactRequest) error {
	if err := Validate(req); err != nil {
		return err
	}

	msg := Message{
		From:    n.from,
		To:      n.to,
		ReplyTo: strings.TrimSpace(req.Email),
		Subject: subjectPrefix + req.Subject,
		Text:    FormatBody(req),
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		log.Printf("Contact send error: reply_to=%s err=%v", msg.ReplyTo, err)
		if errors.Is(err, models.ErrMissingConfig) {
			return fmt.Errorf("%w: %w", ErrSendFailed, err)
		}
		return ErrSendFailed
	}
	return nil
}
