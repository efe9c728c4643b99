package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/application/usecase/content"
	"github.com/rahulladumor/portfolio-api/internal/domain/education"
)

type EducationHandler struct {
	useCase *content.EducationUseCase
}

func NewEducationHandler(uc *content.EducationUseCase) *EducationHandler {
	return &EducationHandler{useCase: uc}
}

func (h *EducationHandler) List(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *EducationHandler) Get(c *gin.Context) {
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

func (h *EducationHandler) Create(c *gin.Context) {
	var item education.Education
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

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	var item education.Education
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

func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Education entry deleted successfully")
}
