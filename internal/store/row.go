package store

// Row is one record within a table: a mapping of field name to value. Every
// persisted row carries an integer "id" and an RFC3339 "created_at"; the rest
// of the field set is fixed per table by convention, not enforced here.
// Values read back from disk follow encoding/json conventions (numbers are
// float64), so the typed accessors below normalize on behalf of callers.
type Row map[string]any

// Predicate selects rows. A nil predicate matches every row.
type Predicate func(Row) bool

// ID returns the row's integer id, or 0 when absent.
func (r Row) ID() int { return r.Int("id") }

// Int returns the named field as an int, tolerating the numeric types that
// both in-memory inserts and JSON decoding produce.
func (r Row) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Float returns the named field as a float64, or 0 when absent or non-numeric.
func (r Row) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Str returns the named field as a string, or "" when absent or not a string.
func (r Row) Str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Bool returns the named field as a bool, or false when absent.
func (r Row) Bool(key string) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return false
}

// clone returns a shallow copy so callers cannot mutate stored state through
// a returned row.
func (r Row) clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
