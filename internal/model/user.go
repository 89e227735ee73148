package model

import "github.com/Harshhjs/farmconnect/internal/store"

// Roles a user account may hold. Buyers browse, farmers list produce,
// admins manage the platform.
const (
	RoleAdmin  = "admin"
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
)

// Account statuses. An inactive account cannot log in.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User is the typed view of a row in the `users` table. PasswordHash is
// never serialized; response payloads carry everything else.
//
// Fields:
//
//	ID           – row id assigned by the store.
//	Name         – display name.
//	Email        – unique by convention, enforced at the handler layer.
//	PasswordHash – bcrypt hash of the password.
//	Role         – admin, farmer or buyer.
//	Location     – free-form location string.
//	Phone        – contact number.
//	Verified     – whether an admin has verified the account.
//	Status       – active or inactive.
//	CreatedAt    – RFC3339 timestamp assigned at insert.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
	Verified     bool   `json:"verified"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// UserFromRow decodes a store row into a User.
func UserFromRow(r store.Row) User {
	return User{
		ID:           r.ID(),
		Name:         r.Str("name"),
		Email:        r.Str("email"),
		PasswordHash: r.Str("password"),
		Role:         r.Str("role"),
		Location:     r.Str("location"),
		Phone:        r.Str("phone"),
		Verified:     r.Bool("verified"),
		Status:       r.Str("status"),
		CreatedAt:    r.Str("created_at"),
	}
}

// Fields returns the row representation used for inserts. The id and
// created_at fields are owned by the store and never included here.
func (u User) Fields() store.Row {
	return store.Row{
		"name":     u.Name,
		"email":    u.Email,
		"password": u.PasswordHash,
		"role":     u.Role,
		"location": u.Location,
		"phone":    u.Phone,
		"verified": u.Verified,
		"status":   u.Status,
	}
}
