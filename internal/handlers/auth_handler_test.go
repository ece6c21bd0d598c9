package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/otp"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/utils"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/whatsapp"
)

func authRouter(t *testing.T) (*gin.Engine, *AuthHandler) {
	t.Helper()
	db := testDB(t)
	handler := NewAuthHandler(db, testConfig(), otp.NewService(db, 10*time.Minute), whatsapp.NewClient("", ""), noopLogger())

	router := gin.New()
	router.POST("/api/auth/verify-otp", handler.VerifyOTP)
	router.POST("/api/auth/send-otp-whatsapp", handler.SendOTPWhatsApp)
	router.GET("/api/auth/check", handler.Check)
	router.GET("/api/auth/role", handler.Role)
	router.POST("/api/auth/logout", handler.Logout)
	return router, handler
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return doRequest(router, req).Result()
}

func TestVerifyOTPSetsSessionCookie(t *testing.T) {
	router, handler := authRouter(t)
	seedUser(t, handler.DB, "user@example.com", "", "user")

	code, err := handler.OTP.Issue("user@example.com")
	require.NoError(t, err)

	resp := postJSON(t, router, "/api/auth/verify-otp", gin.H{"identifier": "User@Example.com", "code": code})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == utils.SessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session, "session cookie missing")
	assert.True(t, session.HttpOnly)
	assert.Equal(t, "/", session.Path)
	assert.Equal(t, 24*3600, session.MaxAge)

	identifier, ok := utils.ParseSessionToken(session.Value, testSecret)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", identifier)
}

func TestVerifyOTPRejectsWrongCode(t *testing.T) {
	router, handler := authRouter(t)
	seedUser(t, handler.DB, "user@example.com", "", "user")

	_, err := handler.OTP.Issue("user@example.com")
	require.NoError(t, err)

	resp := postJSON(t, router, "/api/auth/verify-otp", gin.H{"identifier": "user@example.com", "code": "000000"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, resp.Cookies())
}

func TestVerifyOTPIsSingleUse(t *testing.T) {
	router, handler := authRouter(t)
	seedUser(t, handler.DB, "user@example.com", "", "user")

	code, err := handler.OTP.Issue("user@example.com")
	require.NoError(t, err)

	resp := postJSON(t, router, "/api/auth/verify-otp", gin.H{"identifier": "user@example.com", "code": code})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, router, "/api/auth/verify-otp", gin.H{"identifier": "user@example.com", "code": code})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendOTPWhatsAppOnlyCheck(t *testing.T) {
	router, handler := authRouter(t)
	seedUser(t, handler.DB, "", "919876543210", "user")

	resp := postJSON(t, router, "/api/auth/send-otp-whatsapp", gin.H{"phone": "+91 98765 43210", "onlyCheck": true})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, router, "/api/auth/send-otp-whatsapp", gin.H{"phone": "0000000000", "onlyCheck": true})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheck(t *testing.T) {
	router, _ := authRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(sessionCookie(t, "user@example.com"))
	assert.Equal(t, http.StatusOK, doRequest(router, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, req).Code)
}

func TestRole(t *testing.T) {
	router, handler := authRouter(t)
	seedUser(t, handler.DB, "admin@example.com", "", "admin")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/role", nil)
	req.AddCookie(sessionCookie(t, "admin@example.com"))
	rec := doRequest(router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin", body.Role)
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _ := authRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(sessionCookie(t, "user@example.com"))
	resp := doRequest(router, req).Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == utils.SessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Negative(t, session.MaxAge)
}
