// Package record defines the capability interfaces shared by every record
// kind the pipeline can carry (Doc, Stub, bare mappings), plus the open
// metadata store attached to documents.
//
// Pipeline combinators and the cache depend only on these interfaces, so new
// record kinds plug in by implementing them rather than by runtime
// registration.
package record

import "fmt"

// Fields names record fields to overwrite in Replace. Keys use the record's
// canonical snake_case field names (id_path, output_path, title, ...).
type Fields map[string]any

// Identifiable is implemented by records with a stable identity path.
type Identifiable interface {
	// ID returns the record's identity path (slash-separated, relative).
	ID() string
}

// Record is the uniform access surface over a concrete record kind.
type Record interface {
	// Get returns the value stored under key and whether the key exists.
	// Implementations never fail for unknown keys.
	Get(key string) (any, bool)

	// Replace returns a new record of the same concrete kind with the given
	// fields overwritten. Unnamed fields are copied unchanged; the receiver
	// is never mutated. Unknown field names are an error.
	Replace(fields Fields) (Record, error)
}

// Get returns the value of key on r, or def when the key is absent.
func Get(r Record, key string, def any) any {
	if v, ok := r.Get(key); ok {
		return v
	}
	return def
}

// Replace returns a new record with fields overwritten. See Record.Replace.
func Replace(r Record, fields Fields) (Record, error) {
	return r.Replace(fields)
}

// Map is a bare mapping record. It satisfies Record so ad-hoc data (template
// contexts, site config fragments) can flow through the same combinators as
// documents.
type Map map[string]any

// Get returns the value stored under key.
func (m Map) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Replace returns a new Map with fields overwritten.
func (m Map) Replace(fields Fields) (Record, error) {
	out := make(Map, len(m)+len(fields))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return out, nil
}

// UnknownFieldError reports a Replace against a field name the record kind
// does not have.
type UnknownFieldError struct {
	Kind  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("record: %s has no field %q", e.Kind, e.Field)
}
