package models

// ContactRequest is the public contact form payload. Phone is optional.
type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

// ContactResponse acknowledges a delivered contact message.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
