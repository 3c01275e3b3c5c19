package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"saaarchi/mailer"
	"saaarchi/models"
)

// ContactNotifier delivers a contact form submission.
type ContactNotifier interface {
	Notify(ctx context.Context, req models.ContactRequest) error
}

// contactError returns the status and visitor-facing message for a failed
// submission.
func contactError(err error) (int, string) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, mailer.MissingFieldsMessage
	}
	return http.StatusInternalServerError, mailer.FailureMessage
}

// SendContact is the JSON contact endpoint.
func SendContact(n ContactNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			status, msg := contactError(bindingError(err, mailer.MissingFieldsMessage))
			c.JSON(status, gin.H{"error": msg})
			return
		}

		if err := n.Notify(c.Request.Context(), req); err != nil {
			status, msg := contactError(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusOK, models.ContactResponse{
			Success: true,
			Message: mailer.SuccessMessage,
		})
	}
}
