package handler

// user.go holds the admin user-management endpoints. All of them sit behind
// JWTAuth plus RequireRole("admin") in the router.

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Harshhjs/farmconnect/internal/config"
	"github.com/Harshhjs/farmconnect/internal/middleware"
	"github.com/Harshhjs/farmconnect/internal/model"
	"github.com/Harshhjs/farmconnect/internal/store"
	"github.com/Harshhjs/farmconnect/internal/utils"
)

// UserHandler bundles dependencies for the admin user endpoints.
type UserHandler struct {
	Cfg   config.Config
	Store *store.Store
}

func NewUserHandler(cfg config.Config, st *store.Store) *UserHandler {
	return &UserHandler{Cfg: cfg, Store: st}
}

type adminCreateReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

type statusReq struct {
	Status string `json:"status"`
}

// List returns every user, newest first, passwords stripped.
func (h *UserHandler) List(c echo.Context) error {
	rows, err := h.Store.Users().All(nil)
	if err != nil {
		return internalError(c, err)
	}
	out := make([]model.User, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, model.UserFromRow(rows[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create lets an admin provision an account with any role, including admin.
func (h *UserHandler) Create(c echo.Context) error {
	var req adminCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Required fields missing"})
	}
	if _, err := h.Store.Users().Get(emailIs(req.Email)); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already exists"})
	} else if !errors.Is(err, store.ErrNotFound) {
		return internalError(c, err)
	}
	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return internalError(c, err)
	}
	u := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         strOr(req.Role, model.RoleBuyer),
		Location:     req.Location,
		Phone:        req.Phone,
		Verified:     false,
		Status:       model.StatusActive,
	}
	row, err := h.Store.Users().Insert(u.Fields())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.UserFromRow(row))
}

// SetStatus toggles an account between active and inactive. Admins cannot
// disable their own account.
func (h *UserHandler) SetStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status != model.StatusActive && req.Status != model.StatusInactive {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status"})
	}
	if id == middleware.UserID(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cannot disable your own account"})
	}
	n, err := h.Store.Users().Update(userByID(id), store.Row{"status": req.Status})
	if err != nil {
		return internalError(c, err)
	}
	if n == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ToggleVerified flips the account's verified flag.
func (h *UserHandler) ToggleVerified(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	row, err := h.Store.Users().Get(userByID(id))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	if err != nil {
		return internalError(c, err)
	}
	if _, err := h.Store.Users().Update(userByID(id), store.Row{"verified": !row.Bool("verified")}); err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Delete removes a user row for good. This is the one hard delete in the
// API; products owned by the user are left in place and join to an empty
// seller name afterwards. Admins cannot delete themselves.
func (h *UserHandler) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if id == middleware.UserID(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cannot delete your own account"})
	}
	n, err := h.Store.Users().Delete(userByID(id))
	if err != nil {
		return internalError(c, err)
	}
	if n == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
