package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/rahulladumor/portfolio-api/internal/application/usecase/auth"
)

type AuthHandler struct {
	loginUseCase *authUC.LoginUseCase
	meUseCase    *authUC.MeUseCase
}

func NewAuthHandler(loginUC *authUC.LoginUseCase, meUC *authUC.MeUseCase) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUC,
		meUseCase:    meUC,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Email and password are required"})
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"token": output.AccessToken,
		"user":  output.User,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User information not found"})
		return
	}

	u, err := h.meUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, u)
}
