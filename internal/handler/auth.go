package handler

import (
	"errors"   // errors provides Is for sentinel comparisons
	"net/http" // HTTP status codes and primitives

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/Harshhjs/farmconnect/internal/config"     // app configuration
	"github.com/Harshhjs/farmconnect/internal/middleware" // identity claim accessors
	"github.com/Harshhjs/farmconnect/internal/model"      // typed domain records
	"github.com/Harshhjs/farmconnect/internal/store"      // file-backed tables
	"github.com/Harshhjs/farmconnect/internal/utils"      // hashing and token issuing
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Store *store.Store
}

func NewAuthHandler(cfg config.Config, st *store.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: st}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // buyer | farmer
	Location string `json:"location"`
	Phone    string `json:"phone"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type profileReq struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}
type passwordReq struct {
	Current     string `json:"current"`
	NewPassword string `json:"newPassword"`
}
type authResp struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// emailIs matches rows by exact, case-sensitive email comparison. Uniqueness
// of emails is a handler-layer convention, not a store constraint.
func emailIs(email string) store.Predicate {
	return func(r store.Row) bool { return r.Str("email") == email }
}

func userByID(id int) store.Predicate {
	return func(r store.Row) bool { return r.ID() == id }
}

// Register creates a user account and returns a credential immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, email and password are required"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Password must be at least 6 characters"})
	}
	if _, err := h.Store.Users().Get(emailIs(req.Email)); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "This email is already registered"})
	} else if !errors.Is(err, store.ErrNotFound) {
		return internalError(c, err)
	}

	// Self-registration only grants buyer or farmer; admin accounts are
	// created by an existing admin.
	role := model.RoleBuyer
	if req.Role == model.RoleFarmer {
		role = model.RoleFarmer
	}
	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return internalError(c, err)
	}
	u := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Location:     req.Location,
		Phone:        req.Phone,
		Verified:     false,
		Status:       model.StatusActive,
	}
	row, err := h.Store.Users().Insert(u.Fields())
	if err != nil {
		return internalError(c, err)
	}
	saved := model.UserFromRow(row)

	token, err := h.issueToken(saved)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, authResp{Token: token, User: saved})
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the identical response so callers cannot enumerate users.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password required"})
	}

	row, err := h.Store.Users().Get(emailIs(req.Email))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return internalError(c, err)
	}
	if err != nil || !utils.VerifyPassword(model.UserFromRow(row).PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid email or password"})
	}
	u := model.UserFromRow(row)
	if u.Status == model.StatusInactive {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Your account has been disabled. Contact support."})
	}

	token, err := h.issueToken(u)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, authResp{Token: token, User: u})
}

// Me returns the authenticated user's record.
func (h *AuthHandler) Me(c echo.Context) error {
	row, err := h.Store.Users().Get(userByID(middleware.UserID(c)))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.UserFromRow(row))
}

// UpdateProfile changes the caller's display fields.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required"})
	}
	if _, err := h.Store.Users().Update(userByID(middleware.UserID(c)), store.Row{
		"name":     req.Name,
		"location": req.Location,
		"phone":    req.Phone,
	}); err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ChangePassword rotates the caller's password after verifying the current
// one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req passwordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	row, err := h.Store.Users().Get(userByID(middleware.UserID(c)))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	if err != nil {
		return internalError(c, err)
	}
	if !utils.VerifyPassword(model.UserFromRow(row).PasswordHash, req.Current) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Current password is incorrect"})
	}
	if len(req.NewPassword) < 6 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "New password must be at least 6 characters"})
	}
	hash, err := utils.HashPassword(req.NewPassword, h.Cfg.BcryptCost)
	if err != nil {
		return internalError(c, err)
	}
	if _, err := h.Store.Users().Update(userByID(middleware.UserID(c)), store.Row{"password": hash}); err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AuthHandler) issueToken(u model.User) (string, error) {
	return utils.NewToken(h.Cfg.JWTSecret, utils.Identity{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Name:  u.Name,
	}, h.Cfg.TokenTTLDays)
}
