// Package paths derives identity, output, section, and title values from
// document paths. All functions operate on slash-separated relative paths
// (the id_path form); conversion to OS paths happens only at the filesystem
// boundary.
package paths

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Nice rewrites a path into its pretty-URL form: "about.md" becomes
// "about/index.md" so the rendered file serves as "about/". Paths whose base
// name is already "index" are returned unchanged.
func Nice(p string) string {
	ext := path.Ext(p)
	stem := Stem(p)
	if stem == "index" {
		return p
	}
	return path.Join(path.Dir(p), stem, "index"+ext)
}

// Section returns the top-level directory component of p, or "" for files at
// the root of the content tree.
func Section(p string) string {
	clean := path.Clean(p)
	i := strings.IndexByte(clean, '/')
	if i < 0 {
		return ""
	}
	return clean[:i]
}

// Title derives a human-readable title from a file name: the extension is
// dropped, dashes and underscores become spaces, and words are title-cased.
func Title(p string) string {
	stem := Stem(p)
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	return titleCaser.String(stem)
}

// Stem returns the base name of p without its extension.
func Stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ChangeExt replaces the extension of p with ext, which must include the
// leading dot (or be empty to strip the extension).
func ChangeExt(p, ext string) string {
	return strings.TrimSuffix(p, path.Ext(p)) + ext
}

// HasExt reports whether p's extension matches one of exts,
// case-insensitively. Extensions include the leading dot.
func HasExt(p string, exts ...string) bool {
	got := strings.ToLower(path.Ext(p))
	for _, ext := range exts {
		if got == strings.ToLower(ext) {
			return true
		}
	}
	return false
}

// Matches reports whether p matches the glob pattern. Malformed patterns
// match nothing.
func Matches(pattern, p string) bool {
	ok, err := path.Match(pattern, p)
	return err == nil && ok
}
