package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Harshhjs/farmconnect/internal/middleware"
	"github.com/Harshhjs/farmconnect/internal/model"
	"github.com/Harshhjs/farmconnect/internal/store"
)

// ProductHandler bundles dependencies for product endpoints.
type ProductHandler struct {
	Store *store.Store
}

func NewProductHandler(st *store.Store) *ProductHandler {
	return &ProductHandler{Store: st}
}

// productReq is the create/update body. Price and Quantity are declared as
// any because clients send them both as JSON numbers and as strings; the
// handlers coerce, defaulting to 0 on non-numeric input.
type productReq struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	Unit        string `json:"unit"`
	Quantity    any    `json:"quantity"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	HarvestDate string `json:"harvest_date"`
	Tier        string `json:"tier"`
}

// fields converts the request body into the coerced, defaulted row fields
// shared by create and update.
func (req productReq) fields() store.Row {
	var harvest any // null when the client sent nothing
	if req.HarvestDate != "" {
		harvest = req.HarvestDate
	}
	return store.Row{
		"name":         req.Name,
		"category":     req.Category,
		"description":  req.Description,
		"price":        toFloat(req.Price),
		"unit":         strOr(req.Unit, "kg"),
		"quantity":     toInt(req.Quantity),
		"location":     req.Location,
		"phone":        req.Phone,
		"harvest_date": harvest,
		"tier":         strOr(req.Tier, model.TierStandard),
	}
}

func productActive(r store.Row) bool { return r.Str("status") == model.ProductActive }

func productByID(id int) store.Predicate {
	return func(r store.Row) bool { return r.ID() == id }
}

// List is the public catalogue: active products with optional category,
// location and free-text filters, each joined with its seller's display
// name, newest first.
func (h *ProductHandler) List(c echo.Context) error {
	category := c.QueryParam("category")
	location := strings.ToLower(c.QueryParam("location"))
	search := strings.ToLower(c.QueryParam("search"))

	rows, err := h.Store.Products().All(func(r store.Row) bool {
		if !productActive(r) {
			return false
		}
		if category != "" && r.Str("category") != category {
			return false
		}
		if location != "" && !strings.Contains(strings.ToLower(r.Str("location")), location) {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Str("name")), search) &&
			!strings.Contains(strings.ToLower(r.Str("description")), search) {
			return false
		}
		return true
	})
	if err != nil {
		return internalError(c, err)
	}

	// Resolve seller names once per distinct seller; a deleted seller joins
	// to an empty name rather than failing the listing.
	names := map[int]string{}
	out := make([]model.ProductWithSeller, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- { // newest first
		p := model.ProductFromRow(rows[i])
		name, ok := names[p.SellerID]
		if !ok {
			if seller, err := h.Store.Users().Get(userByID(p.SellerID)); err == nil {
				name = seller.Str("name")
			}
			names[p.SellerID] = name
		}
		out = append(out, model.ProductWithSeller{Product: p, SellerName: name})
	}
	return c.JSON(http.StatusOK, out)
}

// Mine lists the caller's own active products, newest first.
func (h *ProductHandler) Mine(c echo.Context) error {
	uid := middleware.UserID(c)
	rows, err := h.Store.Products().All(func(r store.Row) bool {
		return r.Int("seller_id") == uid && productActive(r)
	})
	if err != nil {
		return internalError(c, err)
	}
	out := make([]model.Product, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, model.ProductFromRow(rows[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create inserts a new listing owned by the caller.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Category == "" || req.Price == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, category and price are required"})
	}
	fields := req.fields()
	fields["seller_id"] = middleware.UserID(c)
	fields["status"] = model.ProductActive

	row, err := h.Store.Products().Insert(fields)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.ProductFromRow(row))
}

// Update rewrites a listing's fields. Only the owner or an admin may edit;
// ownership and status never change through this endpoint.
func (h *ProductHandler) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	row, err := h.Store.Products().Get(productByID(id))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}
	if err != nil {
		return internalError(c, err)
	}
	if row.Int("seller_id") != middleware.UserID(c) && middleware.Role(c) != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Not authorized to edit this product"})
	}

	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if _, err := h.Store.Products().Update(productByID(id), req.fields()); err != nil {
		return internalError(c, err)
	}
	updated, err := h.Store.Products().Get(productByID(id))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, model.ProductFromRow(updated))
}

// Delete soft-deletes a listing: the status flips to deleted and the row is
// retained, so a direct read by id still finds it.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	row, err := h.Store.Products().Get(productByID(id))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}
	if err != nil {
		return internalError(c, err)
	}
	if row.Int("seller_id") != middleware.UserID(c) && middleware.Role(c) != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Not authorized"})
	}
	if _, err := h.Store.Products().Update(productByID(id), store.Row{"status": model.ProductDeleted}); err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
