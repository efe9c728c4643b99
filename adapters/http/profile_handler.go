package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/portfolio"
)

type ProfileHandler struct {
	getProfileUseCase *portfolioUC.GetProfileUseCase
}

func NewProfileHandler(uc *portfolioUC.GetProfileUseCase) *ProfileHandler {
	return &ProfileHandler{getProfileUseCase: uc}
}

// GetProfile always answers 200. A total storage failure degrades to the
// compiled-in static document with an explanatory message.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output := h.getProfileUseCase.Execute(c.Request.Context())

	body := gin.H{"status": "success", "data": output.Profile}
	if output.Notice != "" {
		body["message"] = output.Notice
	}
	c.JSON(http.StatusOK, body)
}
