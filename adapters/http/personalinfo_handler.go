package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rahulladumor/portfolio-api/internal/application/usecase/content"
	"github.com/rahulladumor/portfolio-api/internal/domain/personalinfo"
)

type PersonalInfoHandler struct {
	useCase *content.PersonalInfoUseCase
}

func NewPersonalInfoHandler(uc *content.PersonalInfoUseCase) *PersonalInfoHandler {
	return &PersonalInfoHandler{useCase: uc}
}

func (h *PersonalInfoHandler) Current(c *gin.Context) {
	p, err := h.useCase.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, p)
}

func (h *PersonalInfoHandler) List(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, len(items))
}

func (h *PersonalInfoHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	p, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, p)
}

func (h *PersonalInfoHandler) Create(c *gin.Context) {
	var p personalinfo.PersonalInfo
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}
	created, err := h.useCase.Create(c.Request.Context(), &p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

func (h *PersonalInfoHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	var p personalinfo.PersonalInfo
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}
	p.ID = id
	updated, err := h.useCase.Update(c.Request.Context(), &p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func (h *PersonalInfoHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid id"})
		return
	}
	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Personal info deleted successfully")
}
