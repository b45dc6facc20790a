package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lessonbook/internal/model"
	"lessonbook/internal/service"
)

type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerRequest struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password" binding:"required"`
	Section          string `json:"section" binding:"required"`
	Role             string `json:"role"`
	TelegramChatID   *int64 `json:"telegramChatId"`
	TelegramUsername string `json:"telegramUsername"`
}

// Register регистрирует пользователя
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, password and section are required"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Username:         req.Username,
		Password:         req.Password,
		Section:          req.Section,
		Role:             model.UserRole(req.Role),
		TelegramChatID:   req.TelegramChatID,
		TelegramUsername: req.TelegramUsername,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Section  string `json:"section" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login проверяет учётные данные и выдаёт токен
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section, username and password are required"})
		return
	}

	token, user, err := h.users.Login(c.Request.Context(), req.Section, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me возвращает текущего пользователя
// GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
