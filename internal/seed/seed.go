// Package seed populates the store with demo data on first run. The guard
// is the users table: when it already holds rows the whole step is a no-op,
// so restarting the process never duplicates the fixtures.
package seed

import (
	"fmt"
	"log"

	"github.com/Harshhjs/farmconnect/internal/store"
	"github.com/Harshhjs/farmconnect/internal/utils"
)

type demoUser struct {
	name, email, password, role, location, phone string
	verified                                     bool
}

type demoProduct struct {
	name, category, description string
	price                       float64
	unit                        string
	quantity                    int
	location, phone             string
	harvestDate                 any // string date or nil
	tier                        string
}

var demoUsers = []demoUser{
	{"Harsh Choudhary", "harsh@farmconnect.in", "admin123", "admin", "New Delhi, India", "9304782747", true},
	{"Ramesh Kumar", "ramesh@gmail.com", "farmer123", "farmer", "Haryana, India", "9876543210", true},
	{"Suresh Patel", "suresh@gmail.com", "farmer123", "farmer", "Gujarat, India", "9812345678", false},
	{"Priya Singh", "priya@gmail.com", "buyer123", "buyer", "Mumbai, India", "9998765432", true},
}

var demoProducts = []demoProduct{
	{"Apple (Shimla)", "fruits", "Fresh red apples from Shimla hills, crisp and sweet", 150, "kg", 250, "Himachal Pradesh, India", "93047827476", "2024-11-15", "premium"},
	{"Wheat Seeds (HD-2967)", "seeds", "High-yielding wheat variety suitable for North Indian plains", 45, "kg", 200, "Haryana, India", "93047827476", nil, "standard"},
	{"Organic Fertilizer", "fertilizer", "100% organic compost fertilizer for all crops", 15, "kg", 1000, "Karnataka, India", "93047827476", nil, "premium"},
	{"Premium Basmati Rice", "rice", "Aged basmati rice with extra long grains", 120, "kg", 500, "Punjab, India", "93047827476", "2024-10-20", "premium"},
	{"Farm Tractor (2nd Hand)", "equipment", "Mahindra 475 DI, 2019 model, good condition", 450000, "piece", 1, "Rajasthan, India", "93047827476", nil, "standard"},
	{"Tomato (Desi)", "vegetables", "Farm-fresh desi tomatoes, no pesticides", 25, "kg", 300, "Maharashtra, India", "93047827476", nil, "standard"},
	{"Sunflower Seeds", "seeds", "High oil content sunflower seeds for planting", 35, "kg", 150, "Karnataka, India", "93047827476", nil, "standard"},
	{"DAP Fertilizer", "fertilizer", "Di-ammonium phosphate fertilizer for fast growth", 1350, "kg", 200, "Haryana, India", "93047827476", nil, "premium"},
	{"Mango (Alphonso)", "fruits", "Premium Alphonso mangoes from Ratnagiri", 200, "kg", 100, "Maharashtra, India", "93047827476", nil, "premium"},
	{"Onion", "vegetables", "Fresh onions, large size, no chemicals", 20, "kg", 600, "Maharashtra, India", "93047827476", nil, "standard"},
	{"Paddy Seeds (IR-64)", "seeds", "IR-64 paddy variety suitable for lowland farming", 55, "kg", 300, "Odisha, India", "93047827476", nil, "standard"},
}

// Run seeds the users and products tables when the users table is empty.
// The demo set is four users (one admin, two farmers, one buyer) and eleven
// products attributed to the first farmer. Not safe against two processes
// racing on a fresh data directory; acceptable for a single-process demo.
func Run(st *store.Store, bcryptCost int) error {
	n, err := st.Users().Count(nil)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil // already seeded
	}

	log.Println("seeding store with demo data...")

	var farmerID int
	for i, u := range demoUsers {
		hash, err := utils.HashPassword(u.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", u.email, err)
		}
		row, err := st.Users().Insert(store.Row{
			"name":     u.name,
			"email":    u.email,
			"password": hash,
			"role":     u.role,
			"location": u.location,
			"phone":    u.phone,
			"verified": u.verified,
			"status":   "active",
		})
		if err != nil {
			return fmt.Errorf("seed: insert user %s: %w", u.email, err)
		}
		// Demo products belong to the first farmer (Ramesh).
		if i == 1 {
			farmerID = row.ID()
		}
	}

	for _, p := range demoProducts {
		if _, err := st.Products().Insert(store.Row{
			"name":         p.name,
			"category":     p.category,
			"description":  p.description,
			"price":        p.price,
			"unit":         p.unit,
			"quantity":     p.quantity,
			"location":     p.location,
			"phone":        p.phone,
			"harvest_date": p.harvestDate,
			"tier":         p.tier,
			"seller_id":    farmerID,
			"status":       "active",
		}); err != nil {
			return fmt.Errorf("seed: insert product %s: %w", p.name, err)
		}
	}

	users, _ := st.Users().Count(nil)
	products, _ := st.Products().Count(nil)
	log.Printf("seeded: %d users, %d products", users, products)
	return nil
}
