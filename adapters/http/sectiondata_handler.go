package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulladumor/portfolio-api/internal/application/usecase/content"
	"github.com/rahulladumor/portfolio-api/internal/domain/sectiondata"
)

// SectionDataHandler is keyed by sectionType instead of an id.
type SectionDataHandler struct {
	useCase *content.SectionDataUseCase
}

func NewSectionDataHandler(uc *content.SectionDataUseCase) *SectionDataHandler {
	return &SectionDataHandler{useCase: uc}
}

func (h *SectionDataHandler) List(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *SectionDataHandler) Get(c *gin.Context) {
	t := sectiondata.SectionType(c.Param("sectionType"))
	item, err := h.useCase.Get(c.Request.Context(), t)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *SectionDataHandler) Upsert(c *gin.Context) {
	t := sectiondata.SectionType(c.Param("sectionType"))

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Request body must be a JSON object"})
		return
	}

	item, err := h.useCase.Upsert(c.Request.Context(), t, data)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *SectionDataHandler) Delete(c *gin.Context) {
	t := sectiondata.SectionType(c.Param("sectionType"))
	if err := h.useCase.Delete(c.Request.Context(), t); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Section data deleted successfully")
}
