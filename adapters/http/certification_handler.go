package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/application/usecase/content"
	"github.com/rahulladumor/portfolio-api/internal/domain/certification"
)

type CertificationHandler struct {
	useCase *content.CertificationUseCase
}

func NewCertificationHandler(uc *content.CertificationUseCase) *CertificationHandler {
	return &CertificationHandler{useCase: uc}
}

func (h *CertificationHandler) List(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *CertificationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	item, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *CertificationHandler) Create(c *gin.Context) {
	var item certification.Certification
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}
	created, err := h.useCase.Create(c.Request.Context(), &item)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	var item certification.Certification
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}
	item.ID = id
	updated, err := h.useCase.Update(c.Request.Context(), &item)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Certification deleted successfully")
}
