package handler

// Shared fixtures for handler tests. Handlers are exercised directly against
// Echo contexts; the guard middleware has its own tests, so authenticated
// identity is injected by setting the context keys JWTAuth would set.

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Harshhjs/farmconnect/internal/config"
	"github.com/Harshhjs/farmconnect/internal/middleware"
	"github.com/Harshhjs/farmconnect/internal/model"
	"github.com/Harshhjs/farmconnect/internal/store"
	"github.com/Harshhjs/farmconnect/internal/utils"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		TokenTTLDays: 7,
		BcryptCost:   4, // minimum cost keeps hashing fast in tests
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(store.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	return st
}

// seedUser inserts a user directly through the store and returns its typed
// view.
func seedUser(t *testing.T, st *store.Store, name, email, password, role string) model.User {
	t.Helper()
	hash, err := utils.HashPassword(password, 4)
	require.NoError(t, err)
	u := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       model.StatusActive,
	}
	row, err := st.Users().Insert(u.Fields())
	require.NoError(t, err)
	return model.UserFromRow(row)
}

func seedProduct(t *testing.T, st *store.Store, name string, sellerID int, status string) model.Product {
	t.Helper()
	row, err := st.Products().Insert(store.Row{
		"name":      name,
		"category":  "fruits",
		"price":     10.0,
		"unit":      "kg",
		"quantity":  5,
		"seller_id": sellerID,
		"status":    status,
	})
	require.NoError(t, err)
	return model.ProductFromRow(row)
}

// newCtx builds an Echo context carrying a JSON body.
func newCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// asIdentity stamps the context the way JWTAuth would after verifying a
// credential.
func asIdentity(c echo.Context, u model.User) {
	c.Set(middleware.CtxUserID, float64(u.ID)) // JWT claims decode numbers as float64
	c.Set(middleware.CtxEmail, u.Email)
	c.Set(middleware.CtxRole, u.Role)
	c.Set(middleware.CtxName, u.Name)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func errBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var m map[string]string
	decodeBody(t, rec, &m)
	return m["error"]
}
