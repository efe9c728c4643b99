package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

// Entity endpoints answer in the {status, data|message} envelope; list
// responses additionally carry a count.

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "count": count, "data": data})
}

func respondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "success", "message": message})
}

func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(apperror.ToHTTPStatus(appErr), appErr.ToJSON())
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "An internal server error occurred"})
}
