package model

import "github.com/Harshhjs/farmconnect/internal/store"

// Product listing tiers and statuses. Deletion is a soft status flip; the
// row stays in storage so direct-by-id reads keep working.
const (
	TierStandard = "standard"
	TierPremium  = "premium"

	ProductActive  = "active"
	ProductDeleted = "deleted"
)

// Product is the typed view of a row in the `products` table. SellerID
// references a user id but is not enforced; a product whose seller was
// deleted simply joins to an empty seller name at read time.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Quantity    int     `json:"quantity"`
	Location    string  `json:"location"`
	Phone       string  `json:"phone"`
	HarvestDate *string `json:"harvest_date"`
	Tier        string  `json:"tier"`
	SellerID    int     `json:"seller_id"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// ProductWithSeller decorates a product with its seller's display name for
// the public listing, resolved by id lookup when the response is built.
type ProductWithSeller struct {
	Product
	SellerName string `json:"seller_name"`
}

// ProductFromRow decodes a store row into a Product.
func ProductFromRow(r store.Row) Product {
	p := Product{
		ID:          r.ID(),
		Name:        r.Str("name"),
		Category:    r.Str("category"),
		Description: r.Str("description"),
		Price:       r.Float("price"),
		Unit:        r.Str("unit"),
		Quantity:    r.Int("quantity"),
		Location:    r.Str("location"),
		Phone:       r.Str("phone"),
		Tier:        r.Str("tier"),
		SellerID:    r.Int("seller_id"),
		Status:      r.Str("status"),
		CreatedAt:   r.Str("created_at"),
	}
	if s := r.Str("harvest_date"); s != "" {
		p.HarvestDate = &s
	}
	return p
}
