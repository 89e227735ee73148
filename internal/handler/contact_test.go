package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshhjs/farmconnect/internal/model"
	"github.com/Harshhjs/farmconnect/internal/store"
)

func TestSubmitStoresContact(t *testing.T) {
	st := newTestStore(t)
	h := NewContactHandler(st, false)

	c, rec := newCtx(t, http.MethodPost, "/api/contact",
		`{"name":"Visitor","email":"v@example.com","subject":"Hello","message":"How do I sell?"}`)
	require.NoError(t, h.Submit(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	decodeBody(t, rec, &resp)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Message received! We'll reply within 24 hours.", resp["message"])

	row, err := st.Contacts().Get(func(r store.Row) bool { return r.Str("email") == "v@example.com" })
	require.NoError(t, err)
	assert.Equal(t, "How do I sell?", row.Str("message"))
	assert.Equal(t, "", row.Str("phone")) // optional fields default to empty
}

func TestSubmitValidatesRequiredFields(t *testing.T) {
	h := NewContactHandler(newTestStore(t), false)

	c, rec := newCtx(t, http.MethodPost, "/api/contact", `{"name":"Visitor","email":"v@example.com"}`)
	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email and message are required", errBody(t, rec))
}

func TestContactListNewestFirst(t *testing.T) {
	st := newTestStore(t)
	h := NewContactHandler(st, false)
	for _, name := range []string{"first", "second"} {
		_, err := st.Contacts().Insert(store.Row{"name": name, "email": "x@y.z", "message": "m"})
		require.NoError(t, err)
	}

	c, rec := newCtx(t, http.MethodGet, "/api/contacts", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []model.Contact
	decodeBody(t, rec, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "second", out[0].Name)
	assert.Equal(t, "first", out[1].Name)
}

func TestStatsCounts(t *testing.T) {
	st := newTestStore(t)
	h := NewStatsHandler(st)
	u := seedUser(t, st, "Farmer", "f@example.com", "secret1", model.RoleFarmer)
	seedProduct(t, st, "Active", u.ID, model.ProductActive)
	seedProduct(t, st, "Gone", u.ID, model.ProductDeleted)
	_, err := st.Contacts().Insert(store.Row{"name": "v", "email": "v@x.y", "message": "m"})
	require.NoError(t, err)

	c, rec := newCtx(t, http.MethodGet, "/api/stats", "")
	asIdentity(c, u)
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]int
	decodeBody(t, rec, &out)
	assert.Equal(t, 1, out["products"]) // soft-deleted products are not counted
	assert.Equal(t, 1, out["users"])
	assert.Equal(t, 1, out["contacts"])
}
