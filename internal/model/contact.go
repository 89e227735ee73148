package model

import "github.com/Harshhjs/farmconnect/internal/store"

// Contact is one public contact-form submission. Rows are written once and
// only ever read back by admins; no operation mutates or deletes them.
type Contact struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ContactFromRow decodes a store row into a Contact.
func ContactFromRow(r store.Row) Contact {
	return Contact{
		ID:        r.ID(),
		Name:      r.Str("name"),
		Email:     r.Str("email"),
		Phone:     r.Str("phone"),
		Subject:   r.Str("subject"),
		Message:   r.Str("message"),
		CreatedAt: r.Str("created_at"),
	}
}
