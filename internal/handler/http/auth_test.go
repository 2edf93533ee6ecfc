package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/auth"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/jwt"
	"github.com/dpkp-bogor/presensi-backend-go/internal/repository/memory"
	authService "github.com/dpkp-bogor/presensi-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestNIP        = "199001012015011001"
	handlerTestPassword   = "password123"
)

func createAuthHandler(t *testing.T) AuthHandler {
	userRepo := memory.NewUserRepository()

	hashed, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = userRepo.Create(context.Background(), user.User{
		NIP:          handlerTestNIP,
		FullName:     "Budi Santoso",
		Role:         user.RoleEmployee,
		OfficeID:     "office-1",
		PasswordHash: string(hashed),
	})
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)

	return NewAuthHandler(jwtSvc, authSvc)
}

func doLogin(t *testing.T, handler AuthHandler, nip, password string) *httptest.ResponseRecorder {
	body, err := json.Marshal(auth.LoginRequest{NIP: nip, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func refreshCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := createAuthHandler(t)

	rec := doLogin(t, handler, handlerTestNIP, handlerTestPassword)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			User        struct {
				NIP      string `json:"nip"`
				FullName string `json:"full_name"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.Equal(t, handlerTestNIP, resp.Data.User.NIP)

	cookie := refreshCookie(rec)
	require.NotNil(t, cookie, "refresh token cookie should be set")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// The refresh token must never leak into the JSON body.
	assert.NotContains(t, rec.Body.String(), cookie.Value)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler := createAuthHandler(t)

	rec := doLogin(t, handler, handlerTestNIP, "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
	assert.Nil(t, refreshCookie(rec))
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := createAuthHandler(t)

	rec := doLogin(t, handler, "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAuthHandler_Refresh_FromCookie(t *testing.T) {
	handler := createAuthHandler(t)

	loginRec := doLogin(t, handler, handlerTestNIP, handlerTestPassword)
	cookie := refreshCookie(loginRec)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.RefreshToken(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)
}

func TestAuthHandler_Logout_RevokesRefreshToken(t *testing.T) {
	handler := createAuthHandler(t)

	loginRec := doLogin(t, handler, handlerTestNIP, handlerTestPassword)
	cookie := refreshCookie(loginRec)
	require.NotNil(t, cookie)

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutRec := httptest.NewRecorder()
	handler.Logout(logoutRec, logoutReq)
	assert.Equal(t, http.StatusOK, logoutRec.Code)

	cleared := refreshCookie(logoutRec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// Reusing the revoked token must fail.
	refreshReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	refreshReq.AddCookie(cookie)
	refreshRec := httptest.NewRecorder()
	handler.RefreshToken(refreshRec, refreshReq)
	assert.Equal(t, http.StatusUnauthorized, refreshRec.Code)
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	handler := createAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
