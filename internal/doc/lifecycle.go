package doc

import (
	"os"
	"path/filepath"

	"github.com/mtholden/pagesmith/internal/paths"
)

// Load reads a file into a Doc. IDPath is the slash-separated path relative
// to relativeTo (the raw path when relativeTo is empty), OutputPath is the
// pretty-URL form of IDPath, Section is the top-level directory, and Title is
// derived from the file name. Meta is empty and Content is the full file
// body; front-matter extraction is a separate pipeline stage.
//
// File creation time is not portably available, so Created mirrors Modified
// at load; front-matter dates applied by UpliftMeta are the authoritative
// override.
func Load(path string, relativeTo string) (Doc, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Doc{}, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, err
	}

	rel := path
	if relativeTo != "" {
		rel, err = filepath.Rel(relativeTo, path)
		if err != nil {
			return Doc{}, err
		}
	}
	id := filepath.ToSlash(rel)
	modified := info.ModTime().UTC()

	return New(Doc{
		IDPath:     id,
		OutputPath: paths.Nice(id),
		InputPath:  filepath.ToSlash(path),
		Created:    modified,
		Modified:   modified,
		Title:      paths.Title(id),
		Content:    string(content),
		Section:    paths.Section(id),
	})
}

// Write persists d.Content under outputDir joined with d.OutputPath,
// creating intermediate directories. Existing files are overwritten.
func Write(d Doc, outputDir string) error {
	target := filepath.Join(outputDir, filepath.FromSlash(d.OutputPath))
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return err
	}
	return os.WriteFile(target, []byte(d.Content), 0o644)
}

// ChangeExt returns a new Doc whose OutputPath carries ext (leading dot
// included) in place of its current extension. Directory and base name are
// preserved.
func ChangeExt(d Doc, ext string) Doc {
	d.OutputPath = paths.ChangeExt(d.OutputPath, ext)
	return d
}

// UpliftMeta overwrites the first-class Title, Created, and Modified fields
// from the same-named meta keys when present, coercing timestamp values.
// The keys remain in meta.
func UpliftMeta(d Doc) Doc {
	if title, ok := d.Meta.String("title"); ok {
		d.Title = title
	}
	if created, ok := d.Meta.Created(); ok {
		d.Created = created
	}
	if modified, ok := d.Meta.Modified(); ok {
		d.Modified = modified
	}
	return d
}

// Uplift is UpliftMeta in pipeline-stage form.
func Uplift(d Doc) (Doc, error) {
	return UpliftMeta(d), nil
}

// HasExt returns a predicate matching Docs whose IDPath carries one of the
// given extensions.
func HasExt(exts ...string) func(Doc) bool {
	return func(d Doc) bool {
		return paths.HasExt(d.IDPath, exts...)
	}
}

// WithPath returns a predicate matching Docs whose IDPath matches the glob
// pattern.
func WithPath(pattern string) func(Doc) bool {
	return func(d Doc) bool {
		return paths.Matches(pattern, d.IDPath)
	}
}
