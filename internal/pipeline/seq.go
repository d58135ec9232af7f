package pipeline

import "iter"

// Seq is a lazy, single-pass, non-restartable sequence of records. Errors
// travel in-band; once an element yields a non-nil error the sequence stops.
// A linear build over a Seq holds O(1) documents in memory — Collect is the
// explicit point where that stops being true.
type Seq[T any] = iter.Seq2[T, error]

// FromSlice returns a Seq over items.
func FromSlice[T any](items []T) Seq[T] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Map lazily applies stage to every element. A stage failure is yielded once
// and terminates the sequence.
func Map[T any](seq Seq[T], stage Stage[T]) Seq[T] {
	return func(yield func(T, error) bool) {
		for v, err := range seq {
			if err != nil {
				yield(v, err)
				return
			}
			out, err := stage(v)
			if !yield(out, err) || err != nil {
				return
			}
		}
	}
}

// Through lazily applies stages in order to every element; equivalent to
// nested Map calls.
func Through[T any](seq Seq[T], stages ...Stage[T]) Seq[T] {
	for _, stage := range stages {
		seq = Map(seq, stage)
	}
	return seq
}

// Filter lazily drops elements not matching pred.
func Filter[T any](seq Seq[T], pred func(T) bool) Seq[T] {
	return func(yield func(T, error) bool) {
		for v, err := range seq {
			if err != nil {
				yield(v, err)
				return
			}
			if pred(v) && !yield(v, nil) {
				return
			}
		}
	}
}

// Take lazily bounds seq to its first n elements.
func Take[T any](seq Seq[T], n int) Seq[T] {
	return func(yield func(T, error) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v, err := range seq {
			if !yield(v, err) || err != nil {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}

// Collect materializes seq into a slice. This is the visible memory-cost
// transition for stages that need cross-document access (sorting, counting,
// indexing); everything up to it remains single-pass.
func Collect[T any](seq Seq[T]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Each consumes seq, calling fn on every element. The first error — from the
// sequence or from fn — aborts consumption.
func Each[T any](seq Seq[T], fn func(T) error) error {
	for v, err := range seq {
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}
