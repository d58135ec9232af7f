package doc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mtholden/pagesmith/internal/record"
)

func TestNew_MinimalFields_AppliesDefaults(t *testing.T) {
	d, err := New(Doc{IDPath: "post/hello.md", OutputPath: "post/hello/index.md"})
	require.NoError(t, err)
	require.Equal(t, Epoch, d.Created)
	require.Equal(t, Epoch, d.Modified)
	require.NotNil(t, d.Meta)
	require.Empty(t, d.Meta)
	require.NotNil(t, d.Templates)
	require.Empty(t, d.Templates)
}

func TestNew_MissingIDPath_ReturnsError(t *testing.T) {
	_, err := New(Doc{OutputPath: "out.html"})
	require.Error(t, err)
}

func TestNew_MissingOutputPath_ReturnsError(t *testing.T) {
	_, err := New(Doc{IDPath: "post/hello.md"})
	require.Error(t, err)
}

func TestReplace_SingleField_LeavesOthersEqual(t *testing.T) {
	d, err := New(Doc{
		IDPath:     "post/hello.md",
		OutputPath: "post/hello/index.md",
		Title:      "Hello",
		Content:    "body",
		Section:    "post",
	})
	require.NoError(t, err)

	out, err := d.Replace(record.Fields{"title": "x"})
	require.NoError(t, err)

	updated, ok := out.(Doc)
	require.True(t, ok)
	require.Equal(t, "x", updated.Title)

	// Everything else is structurally equal.
	updated.Title = d.Title
	require.Equal(t, d, updated)
}

func TestReplace_DoesNotMutateOriginal(t *testing.T) {
	d, err := New(Doc{IDPath: "a.md", OutputPath: "a/index.md", Title: "before"})
	require.NoError(t, err)

	_, err = d.Replace(record.Fields{"title": "after"})
	require.NoError(t, err)
	require.Equal(t, "before", d.Title)
}

func TestReplace_UnknownField_ReturnsError(t *testing.T) {
	d, err := New(Doc{IDPath: "a.md", OutputPath: "a/index.md"})
	require.NoError(t, err)

	_, err = d.Replace(record.Fields{"nope": 1})
	require.Error(t, err)

	var unknown *record.UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "nope", unknown.Field)
}

func TestReplace_TimestampString_IsCoerced(t *testing.T) {
	d, err := New(Doc{IDPath: "a.md", OutputPath: "a/index.md"})
	require.NoError(t, err)

	out, err := d.Replace(record.Fields{"modified": "2024-03-01"})
	require.NoError(t, err)
	require.Equal(t,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		out.(Doc).Modified)
}

func TestGet_KnownKey_ReturnsValue(t *testing.T) {
	d, err := New(Doc{IDPath: "post/hello.md", OutputPath: "post/hello/index.md", Title: "Hello"})
	require.NoError(t, err)

	v, ok := d.Get("title")
	require.True(t, ok)
	require.Equal(t, "Hello", v)
}

func TestGet_UnknownKey_ReportsAbsent(t *testing.T) {
	d, err := New(Doc{IDPath: "a.md", OutputPath: "a/index.md"})
	require.NoError(t, err)

	_, ok := d.Get("nope")
	require.False(t, ok)
	require.Equal(t, "fallback", record.Get(d, "nope", "fallback"))
}

func TestReplaceMeta_CopiesMetaMap(t *testing.T) {
	d, err := New(Doc{IDPath: "a.md", OutputPath: "a/index.md"})
	require.NoError(t, err)

	out := ReplaceMeta(d, "tags", []string{"go"})
	require.True(t, out.Meta.Has("tags"))
	require.False(t, d.Meta.Has("tags"))
}
