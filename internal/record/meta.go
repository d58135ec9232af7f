package record

import "time"

// Meta is the open-ended metadata mapping attached to a document. Arbitrary
// front-matter keys live here; the typed accessors cover the well-known keys
// that lifecycle operations uplift into first-class fields.
type Meta map[string]any

// timeLayouts are the accepted string encodings for timestamp values, tried
// in order. yaml.v3 already decodes untagged ISO timestamps to time.Time, so
// these only matter for quoted values and JSON input.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// String returns the string stored under key. Non-string values report false.
func (m Meta) String(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Time returns the timestamp stored under key, coercing from time.Time or
// one of the accepted string layouts.
func (m Meta) Time(key string) (time.Time, bool) {
	v, ok := m[key]
	if !ok {
		return time.Time{}, false
	}
	return CoerceTime(v)
}

// Has reports whether key is present.
func (m Meta) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Title returns the well-known title key, or "".
func (m Meta) Title() string {
	s, _ := m.String("title")
	return s
}

// Summary returns the well-known summary key, or "".
func (m Meta) Summary() string {
	s, _ := m.String("summary")
	return s
}

// Created returns the well-known created timestamp.
func (m Meta) Created() (time.Time, bool) {
	return m.Time("created")
}

// Modified returns the well-known modified timestamp.
func (m Meta) Modified() (time.Time, bool) {
	return m.Time("modified")
}

// Clone returns a shallow copy of m. A nil Meta clones to an empty one so the
// copy is always safe to write to.
func (m Meta) Clone() Meta {
	out := make(Meta, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Set returns a copy of m with key set to value. m is never mutated.
func (m Meta) Set(key string, value any) Meta {
	out := m.Clone()
	out[key] = value
	return out
}

// CoerceTime converts a metadata value to a time.Time. Values already decoded
// to time.Time pass through in UTC; strings are parsed against the accepted
// layouts.
func CoerceTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC(), true
			}
		}
	}
	return time.Time{}, false
}
