package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gridops/internal/auth"
	"gridops/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupProtected(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		ident, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": ident.UserID, "username": ident.Username})
	})
	return r
}

func TestRequireAuthRejects(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := setupProtected(tokens)

	cases := map[string]string{
		"no header":        "",
		"no token segment": "Bearer",
		"wrong scheme":     "Basic abc123",
		"garbage token":    "Bearer not.a.token",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.JSONEq(t, `{"message":"unauthorized"}`, w.Body.String())
		})
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := setupProtected(tokens)

	user := models.User{ID: uuid.New(), Username: "alice"}
	token, err := tokens.Issue(user)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), user.ID.String())
	require.Contains(t, w.Body.String(), "alice")
}
