package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

type BulkHandler struct {
	importUseCase   *portfolioUC.ImportUseCase
	exportUseCase   *portfolioUC.ExportUseCase
	snapshotUseCase *portfolioUC.SnapshotUseCase
}

func NewBulkHandler(importUC *portfolioUC.ImportUseCase, exportUC *portfolioUC.ExportUseCase, snapshotUC *portfolioUC.SnapshotUseCase) *BulkHandler {
	return &BulkHandler{
		importUseCase:   importUC,
		exportUseCase:   exportUC,
		snapshotUseCase: snapshotUC,
	}
}

// Update replaces the whole portfolio from one flat document. The body is
// shape-checked as a raw map first so field-level messages name the
// offending key, then bound to the typed document.
func (h *BulkHandler) Update(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to read request body"})
		return
	}

	var body map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request body must be a JSON object"})
			return
		}
	}
	if appErr := portfolio.ValidateRawDocument(body); appErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": appErr.Message})
		return
	}

	var doc portfolio.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request body does not match the portfolio document shape"})
		return
	}

	summary, err := h.importUseCase.Execute(c.Request.Context(), &doc)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperror.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update portfolio data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Portfolio data updated successfully",
		"summary":   summary,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Export returns the flat document unwrapped, with no status envelope.
func (h *BulkHandler) Export(c *gin.Context) {
	doc, err := h.exportUseCase.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to export portfolio data",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *BulkHandler) Snapshot(c *gin.Context) {
	output, err := h.snapshotUseCase.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create portfolio snapshot",
			"error":   err.Error(),
		})
		return
	}
	respondData(c, http.StatusOK, output)
}
