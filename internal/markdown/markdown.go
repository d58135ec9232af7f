// Package markdown renders document content from Markdown to HTML. It is a
// content-specific transform layered on the pipeline core: gate it with
// pipeline.MapsIfExt so non-Markdown documents pass through untouched.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/mtholden/pagesmith/internal/doc"
)

// outputExt is the extension rendered documents are written under.
const outputExt = ".html"

var md = goldmark.New()

// Render converts d's content from Markdown to HTML and retargets its output
// path to the rendered extension.
func Render(d doc.Doc) (doc.Doc, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(d.Content), &buf); err != nil {
		return d, err
	}
	d.Content = buf.String()
	return doc.ChangeExt(d, outputExt), nil
}
