// Package doc defines the immutable document records flowing through the
// pipeline and the lifecycle operations that create, demote, promote, and
// persist them.
//
// A Doc carries the full content body, which for large trees can dominate
// memory. Builds therefore stream Docs one at a time; when many documents must
// be cross-referenced at once (indexes, recent-post lists), they are demoted
// to Stubs first.
package doc

import (
	"fmt"
	"time"

	"github.com/mtholden/pagesmith/internal/record"
)

// Epoch is the sentinel timestamp for documents whose real times are unknown.
var Epoch = time.Unix(0, 0).UTC()

// Doc represents one document in flight. Docs are value types: every
// transform returns a new Doc and never mutates its input. IDPath and Section
// are fixed at creation; metadata, content, output path, and templates evolve
// along the pipeline.
type Doc struct {
	IDPath     string      `json:"id_path"`
	OutputPath string      `json:"output_path"`
	InputPath  string      `json:"input_path,omitempty"`
	Created    time.Time   `json:"created"`
	Modified   time.Time   `json:"modified"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Section    string      `json:"section"`
	Meta       record.Meta `json:"meta"`
	Templates  []string    `json:"templates"`
}

// New returns d with construction defaults applied: an empty meta map, an
// empty template list, and Epoch for zero timestamps. It fails only when the
// identity fields are missing.
func New(d Doc) (Doc, error) {
	if d.IDPath == "" {
		return Doc{}, fmt.Errorf("doc: id_path is required")
	}
	if d.OutputPath == "" {
		return Doc{}, fmt.Errorf("doc: output_path is required")
	}
	if d.Created.IsZero() {
		d.Created = Epoch
	}
	if d.Modified.IsZero() {
		d.Modified = Epoch
	}
	if d.Meta == nil {
		d.Meta = record.Meta{}
	}
	if d.Templates == nil {
		d.Templates = []string{}
	}
	return d, nil
}

// ID returns the document's identity path.
func (d Doc) ID() string { return d.IDPath }

// Get returns the named field's value. Unknown keys report false, never fail.
func (d Doc) Get(key string) (any, bool) {
	switch key {
	case "id_path":
		return d.IDPath, true
	case "output_path":
		return d.OutputPath, true
	case "input_path":
		return d.InputPath, true
	case "created":
		return d.Created, true
	case "modified":
		return d.Modified, true
	case "title":
		return d.Title, true
	case "content":
		return d.Content, true
	case "section":
		return d.Section, true
	case "meta":
		return d.Meta, true
	case "templates":
		return d.Templates, true
	}
	return nil, false
}

// Replace returns a new Doc with the named fields overwritten. The receiver
// is unchanged; unnamed fields are copied as-is (the meta map is shared
// unless replaced — use ReplaceMeta to update single keys safely).
func (d Doc) Replace(fields record.Fields) (record.Record, error) {
	out := d
	for key, value := range fields {
		var err error
		switch key {
		case "id_path":
			out.IDPath, err = asString(key, value)
		case "output_path":
			out.OutputPath, err = asString(key, value)
		case "input_path":
			out.InputPath, err = asString(key, value)
		case "created":
			out.Created, err = asTime(key, value)
		case "modified":
			out.Modified, err = asTime(key, value)
		case "title":
			out.Title, err = asString(key, value)
		case "content":
			out.Content, err = asString(key, value)
		case "section":
			out.Section, err = asString(key, value)
		case "meta":
			out.Meta, err = asMeta(key, value)
		case "templates":
			out.Templates, err = asStrings(key, value)
		default:
			return nil, &record.UnknownFieldError{Kind: "doc", Field: key}
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReplaceMeta returns a new Doc whose meta map is a copy of d's with key set
// to value.
func ReplaceMeta(d Doc, key string, value any) Doc {
	d.Meta = d.Meta.Set(key, value)
	return d
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("record: field %q wants a string, got %T", key, v)
	}
	return s, nil
}

func asTime(key string, v any) (time.Time, error) {
	t, ok := record.CoerceTime(v)
	if !ok {
		return time.Time{}, fmt.Errorf("record: field %q wants a timestamp, got %T", key, v)
	}
	return t, nil
}

func asMeta(key string, v any) (record.Meta, error) {
	switch m := v.(type) {
	case record.Meta:
		return m, nil
	case map[string]any:
		return record.Meta(m), nil
	}
	return nil, fmt.Errorf("record: field %q wants a mapping, got %T", key, v)
}

func asStrings(key string, v any) ([]string, error) {
	s, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("record: field %q wants a string list, got %T", key, v)
	}
	return s, nil
}
