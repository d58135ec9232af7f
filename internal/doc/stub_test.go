package doc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mtholden/pagesmith/internal/record"
)

func sampleDoc(t *testing.T) Doc {
	t.Helper()
	d, err := New(Doc{
		IDPath:     "post/hello.md",
		OutputPath: "post/hello/index.html",
		InputPath:  "content/post/hello.md",
		Created:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Modified:   time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC),
		Title:      "Hello",
		Content:    "<p>First paragraph of the post.</p>",
		Section:    "post",
		Meta:       record.Meta{"tags": "go"},
	})
	require.NoError(t, err)
	return d
}

func TestToStub_ThenFromStub_PreservesIdentityAndMetadata(t *testing.T) {
	d := sampleDoc(t)

	back := FromStub(ToStub(d))

	require.Equal(t, d.IDPath, back.IDPath)
	require.Equal(t, d.OutputPath, back.OutputPath)
	require.Equal(t, d.InputPath, back.InputPath)
	require.Equal(t, d.Created, back.Created)
	require.Equal(t, d.Modified, back.Modified)
	require.Equal(t, d.Title, back.Title)
	require.Equal(t, d.Section, back.Section)
	require.Equal(t, d.Meta, back.Meta)
	require.Empty(t, back.Content)
}

func TestToStub_NoSummaryMeta_DerivesSummaryFromContent(t *testing.T) {
	d := sampleDoc(t)

	s := ToStub(d)
	require.Equal(t, "First paragraph of the post.", s.Summary)
}

func TestToStub_SummaryMeta_TakesPrecedence(t *testing.T) {
	d := ReplaceMeta(sampleDoc(t), "summary", "hand-written summary")

	s := ToStub(d)
	require.Equal(t, "hand-written summary", s.Summary)
}

func TestToStub_LongContent_TruncatesWithSuffix(t *testing.T) {
	d := sampleDoc(t)
	long := ""
	for range 100 {
		long += "lengthy words accumulate here "
	}
	d.Content = long

	s := ToStub(d)
	require.LessOrEqual(t, len([]rune(s.Summary)), SummaryLength+len("..."))
	require.True(t, len(s.Summary) > 0)
	require.Contains(t, s.Summary, "...")
}

func TestStubReplace_SingleField_LeavesOthersEqual(t *testing.T) {
	s := ToStub(sampleDoc(t))

	out, err := s.Replace(record.Fields{"summary": "new"})
	require.NoError(t, err)

	updated, ok := out.(Stub)
	require.True(t, ok)
	require.Equal(t, "new", updated.Summary)

	updated.Summary = s.Summary
	require.Equal(t, s, updated)
}

func TestNewStub_MissingIdentity_ReturnsError(t *testing.T) {
	_, err := NewStub(Stub{OutputPath: "a/index.html"})
	require.Error(t, err)

	_, err = NewStub(Stub{IDPath: "a.md"})
	require.Error(t, err)
}
