package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/contact"
)

type ContactHandler struct {
	submitUseCase *contactUC.SubmitUseCase
}

func NewContactHandler(uc *contactUC.SubmitUseCase) *ContactHandler {
	return &ContactHandler{submitUseCase: uc}
}

type contactRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Subject       string `json:"subject"`
	Message       string `json:"message" binding:"required"`
	ContactMethod string `json:"contactMethod"`
	OtherSubject  string `json:"otherSubject"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Name, a valid email and a message are required"})
		return
	}

	msg, err := h.submitUseCase.Execute(c.Request.Context(), contactUC.SubmitInput{
		Name:          req.Name,
		Email:         req.Email,
		Subject:       req.Subject,
		Message:       req.Message,
		ContactMethod: req.ContactMethod,
		OtherSubject:  req.OtherSubject,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"id": msg.ID, "message": "Thank you for reaching out! I will get back to you soon."})
}
