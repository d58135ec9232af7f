// Package pipeline provides the composition primitives a content build is
// assembled from: left-to-right function piping, predicate-gated stages,
// lazy single-pass document sequences, and the error-context wrapper that
// gives every stage actionable diagnostics.
package pipeline

import (
	"path"
	"strings"

	"github.com/mtholden/pagesmith/internal/record"
	"github.com/mtholden/pagesmith/internal/util/sets"
)

// Stage transforms one record into another of the same kind. Stages must be
// total and side-effect-free apart from optional cache I/O, so ordering and
// laziness guarantees hold.
type Stage[T any] func(T) (T, error)

// Pipe applies stages left to right, feeding each stage's output to the
// next. The first failing stage aborts the chain.
func Pipe[T any](v T, stages ...Stage[T]) (T, error) {
	for _, stage := range stages {
		var err error
		if v, err = stage(v); err != nil {
			return v, err
		}
	}
	return v, nil
}

// MapsIf gates stage behind pred: matching records are transformed,
// everything else passes through unchanged (identity, not a copy).
func MapsIf[T any](pred func(T) bool, stage Stage[T]) Stage[T] {
	return func(v T) (T, error) {
		if !pred(v) {
			return v, nil
		}
		return stage(v)
	}
}

// MapsIfExt gates stage on the record's identity-path extension. Extensions
// include the leading dot and match case-insensitively. This is how
// format-specific transforms skip non-matching documents in a mixed set.
func MapsIfExt[T record.Identifiable](stage Stage[T], exts ...string) Stage[T] {
	allowed := sets.New[string]()
	for _, ext := range exts {
		allowed.Add(strings.ToLower(ext))
	}
	return MapsIf(func(v T) bool {
		return allowed.Has(strings.ToLower(path.Ext(v.ID())))
	}, stage)
}
