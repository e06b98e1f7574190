package handlers

import (
	"errors"
	"net/http"

	"gridops/internal/auth"
	"gridops/internal/middleware"
	"gridops/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler carries the resource managers' dependencies. One instance serves
// all routes.
type Handler struct {
	Store  store.Store
	Tokens *auth.TokenService
}

func respondData(c *gin.Context, v interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": v})
}

func respondInvalidInput(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
}

// respondError maps the store's error kinds to transport status codes in
// one place; nothing resource-specific leaks through.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
}

// identity pulls the authenticated caller off the context. Routes under
// /api always have one; a miss means the middleware was bypassed.
func identity(c *gin.Context) (middleware.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
	}
	return id, ok
}

// pathID parses the :id segment. A malformed id cannot name any resource,
// so it reports not found rather than a validation error.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondNotFound(c)
		return uuid.Nil, false
	}
	return id, true
}
