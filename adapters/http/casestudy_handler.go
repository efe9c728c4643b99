package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulladumor/portfolio-api/internal/application/usecase/content"
	"github.com/rahulladumor/portfolio-api/internal/domain/casestudy"
)

// CaseStudyHandler routes by the external numeric id, not a UUID.
type CaseStudyHandler struct {
	useCase *content.CaseStudyUseCase
}

func NewCaseStudyHandler(uc *content.CaseStudyUseCase) *CaseStudyHandler {
	return &CaseStudyHandler{useCase: uc}
}

func parseExternalID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid case study id"})
		return 0, false
	}
	return id, true
}

func (h *CaseStudyHandler) List(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *CaseStudyHandler) Get(c *gin.Context) {
	id, ok := parseExternalID(c)
	if !ok {
		return
	}
	item, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *CaseStudyHandler) Create(c *gin.Context) {
	var item casestudy.CaseStudy
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

func (h *CaseStudyHandler) Update(c *gin.Context) {
	id, ok := parseExternalID(c)
	if !ok {
		return
	}
	var item casestudy.CaseStudy
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

func (h *CaseStudyHandler) Delete(c *gin.Context) {
	id, ok := parseExternalID(c)
	if !ok {
		return
	}
	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Case study deleted successfully")
}
