package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/application/usecase/content"
	"github.com/rahulladumor/portfolio-api/internal/domain/additionalinfo"
)

type AdditionalInfoHandler struct {
	useCase *content.AdditionalInfoUseCase
}

func NewAdditionalInfoHandler(uc *content.AdditionalInfoUseCase) *AdditionalInfoHandler {
	return &AdditionalInfoHandler{useCase: uc}
}

func (h *AdditionalInfoHandler) Current(c *gin.Context) {
	s, err := h.useCase.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, s)
}

func (h *AdditionalInfoHandler) List(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *AdditionalInfoHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	s, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, s)
}

func (h *AdditionalInfoHandler) Create(c *gin.Context) {
	var s additionalinfo.AdditionalInfo
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}
	created, err := h.useCase.Create(c.Request.Context(), &s)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

func (h *AdditionalInfoHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	var s additionalinfo.AdditionalInfo
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}
	s.ID = id
	updated, err := h.useCase.Update(c.Request.Context(), &s)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func (h *AdditionalInfoHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Additional info deleted successfully")
}
