package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saaarchi/models"
)

type fakeSender struct {
	sent []Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func validRequest() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Amira Ben Salah",
		Email:   "amira@example.com",
		Phone:   "+216 71 000 000",
		Subject: "Projet de villa",
		Message: "Bonjour, je souhaite construire une villa.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ContactRequest)
		field  string
	}{
		{name: "name", mutate: func(r *models.ContactRequest) { r.Name = "" }, field: "name"},
		{name: "email", mutate: func(r *models.ContactRequest) { r.Email = " " }, field: "email"},
		{name: "subject", mutate: func(r *models.ContactRequest) { r.Subject = "" }, field: "subject"},
		{name: "message", mutate: func(r *models.ContactRequest) { r.Message = "\n" }, field: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := Validate(req)
			require.Error(t, err)
			assert.Equal(t, MissingFieldsMessage, err.Error())

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}

	req := validRequest()
	req.Phone = ""
	assert.NoError(t, Validate(req))
}

func TestFormatBody(t *testing.T) {
	body := FormatBody(validRequest())

	expected := "Nouveau message de contact depuis le site SAA ARCHI\n\n" +
		"Nom: Amira Ben Salah\n" +
		"Email: amira@example.com\n" +
		"Téléphone: +216 71 000 000\n" +
		"Sujet: Projet de villa\n\n" +
		"Message:\n" +
		"Bonjour, je souhaite construire une villa.\n\n" +
		"---\n" +
		"Ce message a été envoyé depuis le formulaire de contact du site web SAA ARCHI."
	assert.Equal(t, expected, body)

	req := validRequest()
	req.Phone = ""
	assert.Contains(t, FormatBody(req), "Téléphone: Non fourni\n")
}

func TestNotify(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "onboarding@resend.dev", "contact@saa-archi.com.tn")

	require.NoError(t, n.Notify(context.Background(), validRequest()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "onboarding@resend.dev", msg.From)
	assert.Equal(t, "contact@saa-archi.com.tn", msg.To)
	assert.Equal(t, "amira@example.com", msg.ReplyTo)
	assert.Equal(t, "Nouveau message: Projet de villa", msg.Subject)
	assert.Equal(t, FormatBody(validRequest()), msg.Text)
}

func TestNotify_InvalidDoesNotSend(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "from@x", "to@x")

	req := validRequest()
	req.Name = ""
	err := n.Notify(context.Background(), req)

	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, sender.sent)
}

func TestNotify_SendFailureIsGeneric(t *testing.T) {
	n := NewNotifier(&fakeSender{err: errors.New("api key invalid: re_123")}, "from@x", "to@x")

	err := n.Notify(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.NotContains(t, err.Error(), "re_123")
}

func TestNotify_MissingAPIKey(t *testing.T) {
	n := NewNotifier(NewResendSender(""), "from@x", "to@x")

	err := n.Notify(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.ErrorIs(t, err, models.ErrMissingConfig)
}

func TestResendSender(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	sender := NewResendSender("re_test")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	sender.client.BaseURL = base

	err = sender.Send(context.Background(), Message{
		From:    "onboarding@resend.dev",
		To:      "contact@saa-archi.com.tn",
		ReplyTo: "amira@example.com",
		Subject: "Nouveau message: Projet",
		Text:    "body",
	})
	require.NoError(t, err)

	assert.Equal(t, "onboarding@resend.dev", got["from"])
	assert.Equal(t, []any{"contact@saa-archi.com.tn"}, got["to"])
	assert.Equal(t, "amira@example.com", got["reply_to"])
	assert.Equal(t, "Nouveau message: Projet", got["subject"])
	assert.Equal(t, "body", got["text"])
}
