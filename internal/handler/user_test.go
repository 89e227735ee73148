package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshhjs/farmconnect/internal/model"
)

func TestAdminListStripsPasswords(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)
	seedUser(t, st, "One", "one@example.com", "secret1", model.RoleBuyer)
	seedUser(t, st, "Two", "two@example.com", "secret1", model.RoleFarmer)

	c, rec := newCtx(t, http.MethodGet, "/api/users", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []model.User
	decodeBody(t, rec, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "Two", out[0].Name) // newest first
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAdminCreateAllowsAnyRole(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)

	c, rec := newCtx(t, http.MethodPost, "/api/users",
		`{"name":"Root","email":"root@example.com","password":"secret1","role":"admin"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.User
	decodeBody(t, rec, &got)
	assert.Equal(t, model.RoleAdmin, got.Role)
}

func TestAdminCreateDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)
	seedUser(t, st, "One", "one@example.com", "secret1", model.RoleBuyer)

	c, rec := newCtx(t, http.MethodPost, "/api/users",
		`{"name":"Two","email":"one@example.com","password":"secret1"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already exists", errBody(t, rec))
}

func TestSetStatusSelfDisableForbidden(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret1", model.RoleAdmin)

	c, rec := newCtx(t, http.MethodPut, "/api/users/1/status", `{"status":"inactive"}`)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(admin.ID))
	asIdentity(c, admin)
	require.NoError(t, h.SetStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot disable your own account", errBody(t, rec))
}

func TestSetStatusValidatesValue(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret1", model.RoleAdmin)
	target := seedUser(t, st, "Target", "target@example.com", "secret1", model.RoleBuyer)

	c, rec := newCtx(t, http.MethodPut, "/api/users/2/status", `{"status":"banned"}`)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(target.ID))
	asIdentity(c, admin)
	require.NoError(t, h.SetStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status", errBody(t, rec))
}

func TestSetStatusDisablesAccount(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret1", model.RoleAdmin)
	target := seedUser(t, st, "Target", "target@example.com", "secret1", model.RoleBuyer)

	c, rec := newCtx(t, http.MethodPut, "/api/users/2/status", `{"status":"inactive"}`)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(target.ID))
	asIdentity(c, admin)
	require.NoError(t, h.SetStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	row, err := st.Users().Get(userByID(target.ID))
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, row.Str("status"))
}

func TestToggleVerifiedFlips(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret1", model.RoleAdmin)
	target := seedUser(t, st, "Target", "target@example.com", "secret1", model.RoleFarmer)

	for _, want := range []bool{true, false} { // toggles back and forth
		c, rec := newCtx(t, http.MethodPut, "/api/users/2/verify", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(target.ID))
		asIdentity(c, admin)
		require.NoError(t, h.ToggleVerified(c))
		require.Equal(t, http.StatusOK, rec.Code)

		row, err := st.Users().Get(userByID(target.ID))
		require.NoError(t, err)
		assert.Equal(t, want, row.Bool("verified"))
	}
}

func TestDeleteUserIsHard(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret1", model.RoleAdmin)
	target := seedUser(t, st, "Target", "target@example.com", "secret1", model.RoleBuyer)

	c, rec := newCtx(t, http.MethodDelete, "/api/users/2", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(target.ID))
	asIdentity(c, admin)
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)

	n, err := st.Users().Count(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteSelfForbidden(t *testing.T) {
	st := newTestStore(t)
	h := NewUserHandler(testConfig(), st)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret1", model.RoleAdmin)

	c, rec := newCtx(t, http.MethodDelete, "/api/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(admin.ID))
	asIdentity(c, admin)
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot delete your own account", errBody(t, rec))
}
