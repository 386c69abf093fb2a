package handler

import (
	"net/http"

	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	authUseCase "github.com/caiofernandes-dev/banco-api/internal/domain/usecase/auth"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService *authUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	credential, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		ID:       credential.ID,
		Username: credential.Username,
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
