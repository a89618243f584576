package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thelo/internal/auth"
	"thelo/internal/models"
	"thelo/internal/notify"
)

var testKey = []byte("handlers-test-secret")

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// newTestEnv wires the full router against an in-memory sqlite handle.
func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.SellerProfile{},
		&models.ShopkeeperProfile{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Notification{},
	))

	notifier := notify.New(db, nil)

	r := gin.New()
	AuthRoutes(r, db, testKey)
	ProfileRoutes(r, db, testKey)
	ProductRoutes(r, db, testKey)
	OrderRoutes(r, db, testKey, notifier)
	NotificationRoutes(r, testKey, notifier)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// sessionCookie returns the value of the token cookie set on the response,
// or "" when none was set.
func sessionCookie(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c.Value
		}
	}
	return ""
}

// signupUser регистрирует пользователя и возвращает его id
func signupUser(t *testing.T, r *gin.Engine, email string, role models.Role) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  "pass1234",
		"role":      role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		User models.User `json:"user"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.User.ID)
	return resp.User.ID
}

// loginUser логинится и возвращает сессионную куку
func loginUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    email,
		"password": "pass1234",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookie := sessionCookie(w)
	require.NotEmpty(t, cookie)
	return cookie
}

// newSeller: signup + login + профиль продавца
func newSeller(t *testing.T, r *gin.Engine, email string) (uint, string) {
	t.Helper()
	id := signupUser(t, r, email, models.RoleSeller)
	cookie := loginUser(t, r, email)
	w := doJSON(t, r, http.MethodPost, "/profiles", gin.H{
		"brandName":       "Brand of " + email,
		"businessAddress": "12 Trade St",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return id, cookie
}

// newShopkeeper: signup + login (профиль для заказов не требуется)
func newShopkeeper(t *testing.T, r *gin.Engine, email string) (uint, string) {
	t.Helper()
	id := signupUser(t, r, email, models.RoleShopkeeper)
	return id, loginUser(t, r, email)
}

// createProduct создаёт товар от имени продавца и возвращает его
func createProduct(t *testing.T, r *gin.Engine, cookie, name, category, location string, priceCents int) models.Product {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/products", gin.H{
		"name":        name,
		"description": "raw material",
		"priceCents":  priceCents,
		"category":    category,
		"stock":       50,
		"location":    location,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Product models.Product `json:"product"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.Product.ID)
	return resp.Product
}
