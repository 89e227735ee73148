package store // package store implements the file-backed table abstraction

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Sentinel errors surfaced by table operations. Handlers translate these
// into their HTTP taxonomy; nothing in this package knows about HTTP.
var (
	// ErrNotFound is returned by Get when no row matches the predicate.
	ErrNotFound = errors.New("store: row not found")
	// ErrCorrupt is returned when a table's backing file exists but does
	// not parse. The original system silently reset such tables to empty,
	// losing data; here the error is surfaced instead so the operator can
	// repair or restore the file.
	ErrCorrupt = errors.New("store: corrupt table file")
)

// document is the durable shape of one table: the full ordered row set plus
// the auto-increment counter. The JSON field names are part of the on-disk
// format and must not change.
type document struct {
	Rows   []Row `json:"rows"`
	NextID int   `json:"nextId"`
}

// Table provides load/query/insert/update/delete over a single JSON document
// at <dataDir>/<name>.json. Every mutation is a whole-document
// read-modify-write under the table mutex, so concurrent callers within one
// process never observe a mix of old and new state. There is no cross-table
// or cross-process coordination.
type Table struct {
	name string
	path string
	mu   sync.Mutex
}

func newTable(dataDir, name string) *Table {
	return &Table{name: name, path: filepath.Join(dataDir, name+".json")}
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// load reads the backing document. A missing file is initialized to an empty
// document and persisted before first use; unparseable content yields
// ErrCorrupt. Callers must hold t.mu.
func (t *Table) load() (*document, error) {
	raw, err := os.ReadFile(t.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := &document{Rows: []Row{}, NextID: 1}
		if err := t.save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", t.name, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, t.name, err)
	}
	if doc.Rows == nil {
		doc.Rows = []Row{}
	}
	return &doc, nil
}

// save rewrites the whole document, pretty-printed. The two-space indent is
// part of the durable format shared with earlier deployments.
func (t *Table) save(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", t.name, err)
	}
	if err := os.WriteFile(t.path, raw, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", t.name, err)
	}
	return nil
}

// All returns every row matching pred in storage order; a nil pred matches
// all rows.
func (t *Table) All(pred Predicate) ([]Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	doc, err := t.load()
	if err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(doc.Rows))
	for _, r := range doc.Rows {
		if pred == nil || pred(r) {
			out = append(out, r.clone())
		}
	}
	return out, nil
}

// Get returns the first row matching pred in storage order, or ErrNotFound.
func (t *Table) Get(pred Predicate) (Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	doc, err := t.load()
	if err != nil {
		return nil, err
	}
	for _, r := range doc.Rows {
		if pred(r) {
			return r.clone(), nil
		}
	}
	return nil, ErrNotFound
}

// Insert assigns the next id and a creation timestamp, appends the row and
// persists the document. The stored row is returned. A persistence failure
// propagates to the caller; the in-memory mutation is discarded with it.
func (t *Table) Insert(fields Row) (Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	doc, err := t.load()
	if err != nil {
		return nil, err
	}
	row := fields.clone()
	row["id"] = doc.NextID
	row["created_at"] = time.Now().UTC().Format(time.RFC3339)
	doc.NextID++
	doc.Rows = append(doc.Rows, row)
	if err := t.save(doc); err != nil {
		return nil, err
	}
	return row.clone(), nil
}

// Update shallow-merges changes over every row matching pred and persists.
// It returns the number of rows changed. Non-matching rows are untouched.
func (t *Table) Update(pred Predicate, changes Row) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	doc, err := t.load()
	if err != nil {
		return 0, err
	}
	updated := 0
	for i, r := range doc.Rows {
		if !pred(r) {
			continue
		}
		next := r.clone()
		for k, v := range changes {
			next[k] = v
		}
		doc.Rows[i] = next
		updated++
	}
	if updated > 0 {
		if err := t.save(doc); err != nil {
			return 0, err
		}
	}
	return updated, nil
}

// Delete removes every row matching pred (hard delete) and persists. It
// returns the number of rows removed. Ids of removed rows are never reused
// because NextID only ever grows.
func (t *Table) Delete(pred Predicate) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	doc, err := t.load()
	if err != nil {
		return 0, err
	}
	kept := doc.Rows[:0]
	for _, r := range doc.Rows {
		if !pred(r) {
			kept = append(kept, r)
		}
	}
	removed := len(doc.Rows) - len(kept)
	doc.Rows = kept
	if removed > 0 {
		if err := t.save(doc); err != nil {
			return 0, err
		}
	}
	return removed, nil
}

// Count reports how many rows match pred; a nil pred counts all rows.
func (t *Table) Count(pred Predicate) (int, error) {
	rows, err := t.All(pred)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
