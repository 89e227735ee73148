package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Harshhjs/farmconnect/internal/model"
	"github.com/Harshhjs/farmconnect/internal/store"
)

// StatsHandler serves the dashboard counters. Any authenticated identity may
// read them.
type StatsHandler struct {
	Store *store.Store
}

func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{Store: st}
}

// Get returns counts of active products, all users and all contact
// submissions.
func (h *StatsHandler) Get(c echo.Context) error {
	products, err := h.Store.Products().Count(func(r store.Row) bool {
		return r.Str("status") == model.ProductActive
	})
	if err != nil {
		return internalError(c, err)
	}
	users, err := h.Store.Users().Count(nil)
	if err != nil {
		return internalError(c, err)
	}
	contacts, err := h.Store.Contacts().Count(nil)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"products": products,
		"users":    users,
		"contacts": contacts,
	})
}
