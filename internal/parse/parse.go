// Package parse provides the format-parsing stages that turn a document's
// free-text content into structured metadata. Formats are recognized by
// content, never required by extension; extension gating is the caller's
// concern (pipeline.MapsIfExt).
package parse

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mtholden/pagesmith/internal/doc"
	"github.com/mtholden/pagesmith/internal/frontmatter"
	"github.com/mtholden/pagesmith/internal/record"
)

// Error reports a malformed document body. The underlying decoder error is
// retained as the cause; the error-context wrapper adds the document
// identity on top.
type Error struct {
	Format string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("malformed %s: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Frontmatter splits a leading delimited metadata block from d's content,
// parses it as YAML into meta, and keeps the remaining body as content.
// Documents without a front-matter block pass through with empty meta.
func Frontmatter(d doc.Doc) (doc.Doc, error) {
	block, body, had, err := frontmatter.Split([]byte(d.Content))
	if err != nil {
		return d, &Error{Format: "front matter", Err: err}
	}
	if !had {
		return d, nil
	}
	fields, err := unmarshalYAML(block)
	if err != nil {
		return d, &Error{Format: "front matter", Err: err}
	}
	d.Meta = fields
	d.Content = string(body)
	return d, nil
}

// YAML treats the entire content as a YAML document: meta becomes the parsed
// structure and content is emptied (the format carries no separate body).
func YAML(d doc.Doc) (doc.Doc, error) {
	fields, err := unmarshalYAML([]byte(d.Content))
	if err != nil {
		return d, &Error{Format: "yaml", Err: err}
	}
	d.Meta = fields
	d.Content = ""
	return d, nil
}

// JSON treats the entire content as a JSON document: meta becomes the parsed
// structure and content is emptied.
func JSON(d doc.Doc) (doc.Doc, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(d.Content), &fields); err != nil {
		return d, &Error{Format: "json", Err: err}
	}
	if fields == nil {
		fields = map[string]any{}
	}
	d.Meta = record.Meta(fields)
	d.Content = ""
	return d, nil
}

func unmarshalYAML(data []byte) (record.Meta, error) {
	if len(data) == 0 {
		return record.Meta{}, nil
	}
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return record.Meta(fields), nil
}
