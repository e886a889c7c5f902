package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petadot/pkg/jwt"
	"petadot/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/refresh", Auth.Refresh)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRefreshIssuesNewTokenPair(t *testing.T) {
	r := newAuthRouter()

	refresh, err := jwt.NewJWTManager(jwt.TokenTypeApp).GenerateToken(7, "individual", false, time.Hour)
	require.NoError(t, err)

	w := postJSON(t, r, "/auth/refresh", gin.H{"refreshToken": refresh})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.SUCCESS, resp.Code)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)

	// 新的accessToken能通过App端解析
	claims, err := jwt.ParseAppToken(resp.Data.AccessToken)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UID)
}

func TestRefreshRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter()

	w := postJSON(t, r, "/auth/refresh", gin.H{"refreshToken": "not-a-token"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.AUTH_ERROR, resp.Code)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	r := newAuthRouter()

	expired, err := jwt.NewJWTManager(jwt.TokenTypeApp).GenerateToken(7, "individual", false, -time.Minute)
	require.NoError(t, err)

	w := postJSON(t, r, "/auth/refresh", gin.H{"refreshToken": expired})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.AUTH_ERROR, resp.Code)
}
