package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gridops/internal/config"
	"gridops/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "0"}
	return NewRouter(cfg, store.NewMemStore())
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func register(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/user", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := do(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}

func TestRegisterAndSignin(t *testing.T) {
	r := newTestRouter()
	register(t, r, "alice", "secret1")

	// duplicate username
	w := do(r, http.MethodPost, "/user", "", gin.H{"username": "alice", "password": "other"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// signin with good credentials
	w = do(r, http.MethodPost, "/signin", "", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	// wrong password and unknown user read identically
	w = do(r, http.MethodPost, "/signin", "", gin.H{"username": "alice", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPass := w.Body.String()

	w = do(r, http.MethodPost, "/signin", "", gin.H{"username": "nobody", "password": "secret1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, wrongPass, w.Body.String())
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/api/asset", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	token := register(t, r, "alice", "secret1")
	w = do(r, http.MethodGet, "/api/asset", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// one flipped character breaks the token
	tampered := []byte(token)
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}
	w = do(r, http.MethodGet, "/api/asset", string(tampered), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatusValidation(t *testing.T) {
	r := newTestRouter()
	token := register(t, r, "alice", "secret1")

	w := do(r, http.MethodPost, "/api/asset", token, gin.H{"name": "Gen-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assetID := dataField(t, w)["id"].(string)

	w = do(r, http.MethodPost, "/api/maintenance", token, gin.H{
		"title": "Inspect", "body": "n/a", "assetId": assetID, "status": "BROKEN",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/maintenance", token, gin.H{
		"title": "Inspect", "body": "n/a", "assetId": assetID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	recID := dataField(t, w)["id"].(string)

	w = do(r, http.MethodPut, "/api/maintenance/"+recID, token, gin.H{"status": "NOT_A_STATUS"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskNameLength(t *testing.T) {
	r := newTestRouter()
	token := register(t, r, "alice", "secret1")

	w := do(r, http.MethodPost, "/api/asset", token, gin.H{"name": "Gen-1"})
	assetID := dataField(t, w)["id"].(string)
	w = do(r, http.MethodPost, "/api/maintenance", token, gin.H{"title": "Inspect", "body": "n/a", "assetId": assetID})
	recID := dataField(t, w)["id"].(string)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}
	w = do(r, http.MethodPost, "/api/task", token, gin.H{
		"name": string(long), "description": "ok", "maintenanceRecordId": recID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// TestOwnershipScenario runs the full two-tenant flow: alice builds an
// asset → record → task chain, bob can see none of it, alice drives the
// record to COMPLETED and tears the chain down leaf first.
func TestOwnershipScenario(t *testing.T) {
	r := newTestRouter()
	aliceToken := register(t, r, "alice", "secret1")

	// alice creates her chain
	w := do(r, http.MethodPost, "/api/asset", aliceToken, gin.H{"name": "Gen-1"})
	require.Equal(t, http.StatusOK, w.Code)
	asset := dataField(t, w)
	require.Equal(t, "Gen-1", asset["name"])
	assetID := asset["id"].(string)

	w = do(r, http.MethodPost, "/api/maintenance", aliceToken, gin.H{
		"title": "Inspect", "body": "n/a", "assetId": assetID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	rec := dataField(t, w)
	require.Equal(t, "SCHEDULED", rec["status"])
	recID := rec["id"].(string)

	w = do(r, http.MethodPost, "/api/task", aliceToken, gin.H{
		"name": "Check oil", "description": "ok", "maintenanceRecordId": recID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	taskID := dataField(t, w)["id"].(string)

	// bob sees nothing of it, and cannot tell denial from absence
	bobToken := register(t, r, "bob", "secret2")
	for _, path := range []string{
		"/api/asset/" + assetID,
		"/api/maintenance/" + recID,
		"/api/task/" + taskID,
	} {
		w = do(r, http.MethodGet, path, bobToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code, path)
	}
	w = do(r, http.MethodDelete, "/api/asset/"+assetID, bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodPost, "/api/maintenance", bobToken, gin.H{
		"title": "Steal", "body": "n/a", "assetId": assetID,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// alice still owns the asset after bob's attempts
	w = do(r, http.MethodGet, "/api/asset/"+assetID, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// status moves to COMPLETED, other fields untouched
	w = do(r, http.MethodPut, "/api/maintenance/"+recID, aliceToken, gin.H{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataField(t, w)
	require.Equal(t, "COMPLETED", updated["status"])
	require.Equal(t, "Inspect", updated["title"])

	// lists flatten across the chain
	w = do(r, http.MethodGet, "/api/maintenance", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/api/task?maintenanceRecordId="+recID, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// teardown leaf first; each delete returns the deleted entity
	w = do(r, http.MethodDelete, "/api/task/"+taskID, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, taskID, dataField(t, w)["id"])

	w = do(r, http.MethodDelete, "/api/maintenance/"+recID, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, recID, dataField(t, w)["id"])

	w = do(r, http.MethodDelete, "/api/asset/"+assetID, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, assetID, dataField(t, w)["id"])

	for _, path := range []string{
		"/api/asset/" + assetID,
		"/api/maintenance/" + recID,
		"/api/task/" + taskID,
	} {
		w = do(r, http.MethodGet, path, aliceToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code, path)
	}

	// the audit trail recorded alice's mutations
	w = do(r, http.MethodGet, "/api/audit", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var auditResp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auditResp))
	require.NotEmpty(t, auditResp.Data)
}
