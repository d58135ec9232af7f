package pipeline

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/mtholden/pagesmith/internal/record"
)

// StageError reports a stage failure together with the identity of the
// document being transformed and the stage's name. The original error is
// retained as the cause.
type StageError struct {
	IDPath string
	Stage  string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("doc %q: stage %s: %v", e.IDPath, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// WithDocContext wraps stage so failures surface as a *StageError carrying
// the document's identity path and the stage's qualified function name. On
// success the wrapper is a pure passthrough.
func WithDocContext[T record.Identifiable](stage Stage[T]) Stage[T] {
	return WithStageName(funcName(stage), stage)
}

// WithStageName is WithDocContext with an explicit stage name, for closures
// and method values whose runtime names are unhelpful.
func WithStageName[T record.Identifiable](name string, stage Stage[T]) Stage[T] {
	return func(v T) (T, error) {
		out, err := stage(v)
		if err != nil {
			return out, &StageError{IDPath: v.ID(), Stage: name, Err: err}
		}
		return out, nil
	}
}

// funcName recovers the package-qualified name of fn, e.g. "parse.YAML".
func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "stage"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
