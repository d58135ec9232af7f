package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtholden/pagesmith/internal/doc"
)

func testDocs(t *testing.T, ids ...string) []doc.Doc {
	t.Helper()
	out := make([]doc.Doc, 0, len(ids))
	for _, id := range ids {
		out = append(out, testDoc(t, id))
	}
	return out
}

func TestMapSeq_IsLazy_NoWorkBeforeConsumption(t *testing.T) {
	calls := 0
	seq := Map(FromSlice(testDocs(t, "a.md", "b.md")), func(d doc.Doc) (doc.Doc, error) {
		calls++
		return d, nil
	})
	require.Zero(t, calls)

	_, err := Collect(seq)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestMapSeq_StopsAtFirstStageError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	seq := Map(FromSlice(testDocs(t, "a.md", "b.md", "c.md")), func(d doc.Doc) (doc.Doc, error) {
		calls++
		if d.IDPath == "b.md" {
			return d, boom
		}
		return d, nil
	})

	_, err := Collect(seq)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls)
}

func TestThrough_AppliesStagesInOrder(t *testing.T) {
	seq := Through(FromSlice(testDocs(t, "a.md")),
		setTitle("one"),
		func(d doc.Doc) (doc.Doc, error) {
			d.Title += "-two"
			return d, nil
		})

	got, err := Collect(seq)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "one-two", got[0].Title)
}

func TestFilter_DropsNonMatching(t *testing.T) {
	seq := Filter(FromSlice(testDocs(t, "post/a.md", "page/b.md", "post/c.md")),
		func(d doc.Doc) bool { return doc.WithPath("post/*.md")(d) })

	got, err := Collect(seq)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestTake_BoundsConsumption(t *testing.T) {
	loaded := 0
	seq := Map(FromSlice(testDocs(t, "a.md", "b.md", "c.md")), func(d doc.Doc) (doc.Doc, error) {
		loaded++
		return d, nil
	})

	got, err := Collect(Take(seq, 2))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 2, loaded)
}

func TestTake_ZeroOrNegative_YieldsNothing(t *testing.T) {
	got, err := Collect(Take(FromSlice(testDocs(t, "a.md")), 0))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEach_ConsumerError_AbortsConsumption(t *testing.T) {
	boom := errors.New("boom")
	seen := 0

	err := Each(FromSlice(testDocs(t, "a.md", "b.md")), func(doc.Doc) error {
		seen++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, seen)
}
