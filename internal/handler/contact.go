package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Harshhjs/farmconnect/internal/model"
	"github.com/Harshhjs/farmconnect/internal/queue"
	"github.com/Harshhjs/farmconnect/internal/service"
	"github.com/Harshhjs/farmconnect/internal/store"
)

// ContactHandler bundles dependencies for the contact endpoints. When
// EventsEnabled is set, each stored submission is also published to the
// message broker for downstream notification; publication is best effort
// and never fails the request.
type ContactHandler struct {
	Store         *store.Store
	EventsEnabled bool
}

func NewContactHandler(st *store.Store, eventsEnabled bool) *ContactHandler {
	return &ContactHandler{Store: st, EventsEnabled: eventsEnabled}
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a public contact-form submission.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, email and message are required"})
	}
	row, err := h.Store.Contacts().Insert(store.Row{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"subject": req.Subject,
		"message": req.Message,
	})
	if err != nil {
		return internalError(c, err)
	}

	if h.EventsEnabled {
		saved := model.ContactFromRow(row)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = service.PublishContactReceived(ctx, queue.ContactReceivedEvent{
				ContactID:  saved.ID,
				Name:       saved.Name,
				Email:      saved.Email,
				Phone:      saved.Phone,
				Subject:    saved.Subject,
				Message:    saved.Message,
				ReceivedAt: saved.CreatedAt,
			})
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Message received! We'll reply within 24 hours.",
	})
}

// List returns every submission for admins, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	rows, err := h.Store.Contacts().All(nil)
	if err != nil {
		return internalError(c, err)
	}
	out := make([]model.Contact, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, model.ContactFromRow(rows[i]))
	}
	return c.JSON(http.StatusOK, out)
}
