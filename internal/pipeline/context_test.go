package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtholden/pagesmith/internal/doc"
)

var errStage = errors.New("stage blew up")

func explodingStage(d doc.Doc) (doc.Doc, error) {
	return d, errStage
}

func TestWithDocContext_Success_IsPassthrough(t *testing.T) {
	wrapped := WithDocContext(setTitle("ok"))

	got, err := wrapped(testDoc(t, "a.md"))
	require.NoError(t, err)
	require.Equal(t, "ok", got.Title)
}

func TestWithDocContext_Failure_ReportsDocAndStage(t *testing.T) {
	wrapped := WithDocContext(explodingStage)

	_, err := wrapped(testDoc(t, "post/hello.md"))
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, "post/hello.md", stageErr.IDPath)
	require.Contains(t, stageErr.Stage, "explodingStage")

	require.Contains(t, err.Error(), "post/hello.md")
	require.Contains(t, err.Error(), "explodingStage")
	require.ErrorIs(t, err, errStage)
}

func TestWithStageName_OverridesDerivedName(t *testing.T) {
	wrapped := WithStageName("custom.Name", failing(errStage))

	_, err := wrapped(testDoc(t, "a.md"))
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, "custom.Name", stageErr.Stage)
}

func TestStageError_MessageLeadsWithIdentity(t *testing.T) {
	err := &StageError{IDPath: "post/a.md", Stage: "parse.YAML", Err: errStage}
	require.Equal(t, `doc "post/a.md": stage parse.YAML: stage blew up`, err.Error())
}
