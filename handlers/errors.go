package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"saaarchi/models"
)

// errorStatus maps a domain error to its HTTP status and the message safe to
// show the client.
func errorStatus(err error) (int, string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "project not found"
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, models.ErrMissingConfig):
		return http.StatusInternalServerError, "server configuration incomplete"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondError(c *gin.Context, err error) {
	status, msg := errorStatus(err)

	body := gin.H{"error": msg}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}
	c.JSON(status, body)
}

// bindingError turns a gin binding failure into a ValidationError. Fields
// failing their `binding` tag get message; malformed bodies get a single
// "body" entry.
func bindingError(err error, message string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewValidationError([]models.FieldError{{Field: "body", Message: "invalid request body"}})
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{Field: fe.Field(), Message: message})
	}
	return models.NewValidationError(fields)
}
