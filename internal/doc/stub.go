package doc

import (
	"fmt"
	"time"

	"github.com/mtholden/pagesmith/internal/record"
	"github.com/mtholden/pagesmith/internal/text"
)

// SummaryLength is the rune budget for summaries derived from content.
const SummaryLength = 250

const summarySuffix = "..."

// Stub is the memory-cheap summary of a Doc: identity and metadata without
// the content body. Demotion is lossy — promoting a Stub back to a Doc yields
// an empty content body; real content comes back only via the cache or a
// fresh Load.
type Stub struct {
	IDPath     string      `json:"id_path"`
	OutputPath string      `json:"output_path"`
	InputPath  string      `json:"input_path,omitempty"`
	Created    time.Time   `json:"created"`
	Modified   time.Time   `json:"modified"`
	Title      string      `json:"title"`
	Summary    string      `json:"summary"`
	Section    string      `json:"section"`
	Meta       record.Meta `json:"meta"`
}

// NewStub returns s with construction defaults applied, failing only when
// identity fields are missing.
func NewStub(s Stub) (Stub, error) {
	if s.IDPath == "" {
		return Stub{}, fmt.Errorf("stub: id_path is required")
	}
	if s.OutputPath == "" {
		return Stub{}, fmt.Errorf("stub: output_path is required")
	}
	if s.Created.IsZero() {
		s.Created = Epoch
	}
	if s.Modified.IsZero() {
		s.Modified = Epoch
	}
	if s.Meta == nil {
		s.Meta = record.Meta{}
	}
	return s, nil
}

// ID returns the stub's identity path.
func (s Stub) ID() string { return s.IDPath }

// Get returns the named field's value. Unknown keys report false.
func (s Stub) Get(key string) (any, bool) {
	switch key {
	case "id_path":
		return s.IDPath, true
	case "output_path":
		return s.OutputPath, true
	case "input_path":
		return s.InputPath, true
	case "created":
		return s.Created, true
	case "modified":
		return s.Modified, true
	case "title":
		return s.Title, true
	case "summary":
		return s.Summary, true
	case "section":
		return s.Section, true
	case "meta":
		return s.Meta, true
	}
	return nil, false
}

// Replace returns a new Stub with the named fields overwritten.
func (s Stub) Replace(fields record.Fields) (record.Record, error) {
	out := s
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
		case "summary":
			out.Summary, err = asString(key, value)
		case "section":
			out.Section, err = asString(key, value)
		case "meta":
			out.Meta, err = asMeta(key, value)
		default:
			return nil, &record.UnknownFieldError{Kind: "stub", Field: key}
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ToStub demotes a Doc to a Stub. The summary comes from the well-known
// "summary" meta key when present, otherwise from the HTML-stripped,
// truncated content.
func ToStub(d Doc) Stub {
	summary := d.Meta.Summary()
	if summary == "" {
		summary = text.Truncate(text.StripHTML(d.Content), SummaryLength, summarySuffix)
	}
	return Stub{
		IDPath:     d.IDPath,
		OutputPath: d.OutputPath,
		InputPath:  d.InputPath,
		Created:    d.Created,
		Modified:   d.Modified,
		Title:      d.Title,
		Summary:    summary,
		Section:    d.Section,
		Meta:       d.Meta,
	}
}

// FromStub promotes a Stub back to a Doc with an empty content body.
func FromStub(s Stub) Doc {
	meta := s.Meta
	if meta == nil {
		meta = record.Meta{}
	}
	return Doc{
		IDPath:     s.IDPath,
		OutputPath: s.OutputPath,
		InputPath:  s.InputPath,
		Created:    s.Created,
		Modified:   s.Modified,
		Title:      s.Title,
		Section:    s.Section,
		Meta:       meta,
		Templates:  []string{},
	}
}
