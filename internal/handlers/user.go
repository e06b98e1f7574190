package handlers

import (
	"errors"
	"net/http"

	"gridops/internal/auth"
	"gridops/internal/models"
	"gridops/internal/store"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user and signs them in immediately.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{Username: req.Username, PasswordHash: hash}
	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			respondInvalidInput(c)
			return
		}
		respondError(c, err)
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Signin verifies credentials and issues a token. Unknown username and
// wrong password produce the same response.
func (h *Handler) Signin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c)
		return
	}

	user, err := h.Store.UserByUsername(c.Request.Context(), req.Username)
	if err != nil || !auth.ComparePassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
