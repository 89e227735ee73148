package store

import (
	"fmt"
	"os"
	"sync"
)

// Config carries the settings the store needs. Passing it explicitly keeps
// the data directory out of package-level state.
type Config struct {
	DataDir string // directory holding one <table>.json document per table
}

// Store owns the application's three domain tables. Each table is a Record
// Store instance over its own JSON document; there is no cross-table
// foreign-key enforcement, relations are resolved by id lookup at read time.
type Store struct {
	cfg    Config
	mu     sync.Mutex
	tables map[string]*Table
}

// Open prepares the data directory and returns a Store. Table files are
// created lazily on first access.
func Open(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &Store{cfg: cfg, tables: make(map[string]*Table)}, nil
}

// Table returns the named table, creating its handle on first use. Handles
// are shared so the per-table mutex actually serializes writers.
func (s *Store) Table(name string) *Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		t = newTable(s.cfg.DataDir, name)
		s.tables[name] = t
	}
	return t
}

// Users returns the users table.
func (s *Store) Users() *Table { return s.Table("users") }

// Products returns the products table.
func (s *Store) Products() *Table { return s.Table("products") }

// Contacts returns the contacts table.
func (s *Store) Contacts() *Table { return s.Table("contacts") }
