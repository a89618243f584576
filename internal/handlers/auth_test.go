package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thelo/internal/auth"
	"thelo/internal/models"
)

func TestSignupLoginMe(t *testing.T) {
	r, _ := newTestEnv(t)

	id := signupUser(t, r, "seller@example.com", models.RoleSeller)
	cookie := loginUser(t, r, "seller@example.com")

	// токен самодостаточен: расшифровывается в ту же личность и роль
	claims, err := auth.ParseToken(testKey, cookie)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, models.RoleSeller, claims.Role)

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, id, resp.User.ID)
	assert.Equal(t, "seller@example.com", resp.User.Email)
	assert.Equal(t, models.RoleSeller, resp.User.Role)
}

func TestLoginWrongPasswordSetsNoCookie(t *testing.T) {
	r, _ := newTestEnv(t)
	signupUser(t, r, "user@example.com", models.RoleShopkeeper)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, sessionCookie(w))
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "pass1234",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, sessionCookie(w))
}

func TestLoginNoPasswordSet(t *testing.T) {
	r, db := newTestEnv(t)
	signupUser(t, r, "broken@example.com", models.RoleSeller)
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "broken@example.com").
		Update("password_hash", "").Error)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "broken@example.com",
		"password": "pass1234",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, _ := newTestEnv(t)
	signupUser(t, r, "dup@example.com", models.RoleSeller)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"firstName": "Other",
		"lastName":  "User",
		"email":     "dup@example.com",
		"password":  "pass1234",
		"role":      models.RoleShopkeeper,
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupMissingFields(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"email": "incomplete@example.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupUnknownRole(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"firstName": "No",
		"lastName":  "Role",
		"email":     "admin@example.com",
		"password":  "pass1234",
		"role":      "admin",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeRequiresSession(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/auth/logout", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			cleared = c.Value == "" && c.MaxAge < 0
		}
	}
	assert.True(t, cleared, "expected the token cookie to be expired")
}
