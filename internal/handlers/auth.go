package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bloodlifesaver/api/internal/middleware"
	"bloodlifesaver/api/internal/models"
	"bloodlifesaver/api/internal/respond"
	"bloodlifesaver/api/internal/service"
)

type registerUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, "User registered successfully", authResponse{
		User:  toUserResponse(result.User),
		Token: result.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Login successful", authResponse{
		User:  toUserResponse(result.User),
		Token: result.Token,
	})
}

func (h HandlerSet) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	current, err := h.auth.CurrentUser(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "User fetched successfully", toUserResponse(current))
}
