package queryable

import (
	"context"
	"iter"
	"math"

	apperrors "github.com/CarterLi/queryable/errors"
)

// End stands in for an unbounded position in Range, Slice, and Splice.
const End = math.MaxInt

// Iterator provides pull-based sequential access to a stream of elements.
type Iterator[T any] interface {
	// Next returns the next element. Returns (zero, false, nil) when
	// exhausted; exhaustion is a terminal signal, never an error. Once
	// exhausted, further calls keep reporting exhaustion.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator and propagates
	// early termination upstream.
	Close() error
}

// Source is the element-source capability: anything that can hand out a
// cursor over its elements. Combinators accept any Source, not just this
// engine's own Query type.
type Source[T any] interface {
	Iter() Iterator[T]
}

// Query is a single-pass, stateful cursor over an upstream sequence. It is
// simultaneously a Source (other stages can pull from it) and an Iterator
// (it is its own cursor), so every stage output feeds every combinator.
type Query[T any] struct {
	cursor Iterator[T]
}

func newQuery[T any](it Iterator[T]) *Query[T] {
	return &Query[T]{cursor: it}
}

// Next pulls the next element from the underlying cursor, applying this
// stage's transformation.
func (q *Query[T]) Next(ctx context.Context) (T, bool, error) {
	return q.cursor.Next(ctx)
}

// Close abandons the traversal and releases upstream resources, including
// any buffered lookahead state held by intermediate stages.
func (q *Query[T]) Close() error {
	return q.cursor.Close()
}

// Iter returns the live cursor. A Query is its own cursor: Iter does not
// restart the traversal, it exposes the same single-pass state.
func (q *Query[T]) Iter() Iterator[T] { return q }

// Seq exposes the traversal as a fallible Go sequence. Ranging over it
// advances the same cursor as Next, so a partial range followed by manual
// pulls resumes where the range stopped. On a fault the pair (zero, err) is
// yielded once and the traversal ends.
func (q *Query[T]) Seq(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, ok, err := q.cursor.Next(ctx)
			if err != nil {
				yield(v, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// queryMarker lets IsQuery recognize a *Query of any element type.
type queryMarker interface{ isQuery() }

func (q *Query[T]) isQuery() {}

// IsQuery reports whether v is a *Query of any element type, as opposed to
// some other Source or iterable.
func IsQuery(v any) bool {
	_, ok := v.(queryMarker)
	return ok
}

// --- Constructors ---

// From creates a Query that re-emits exactly the elements of src, lazily.
// If src is nil the Query is empty.
func From[T any](src Source[T]) *Query[T] {
	if src == nil {
		return FromSlice[T](nil)
	}
	return newQuery(src.Iter())
}

// FromIterator creates a Query over an existing cursor.
func FromIterator[T any](it Iterator[T]) *Query[T] {
	return newQuery(it)
}

// FromSlice creates a Query over a slice of elements.
func FromSlice[T any](items []T) *Query[T] {
	return newQuery[T](&sliceIter[T]{items: items})
}

// FromSeq creates a Query over a Go iterator sequence.
func FromSeq[T any](seq iter.Seq[T]) *Query[T] {
	next, stop := iter.Pull(seq)
	return newQuery[T](&seqIter[T]{next: next, stop: stop})
}

// Of creates a Query over the literal argument list.
func Of[T any](values ...T) *Query[T] {
	return FromSlice(values)
}

// Range produces 0, 1, ..., stop-1. Range(End) is effectively unbounded.
func Range(stop int) *Query[int] {
	return RangeStep(0, stop, 1)
}

// RangeFrom produces start, start+1, ... while strictly less than stop.
// It produces zero elements if start >= stop.
func RangeFrom(start, stop int) *Query[int] {
	return RangeStep(start, stop, 1)
}

// RangeStep produces the arithmetic progression start, start+step, ...
// A positive step emits while the value is less than stop; a negative step
// emits while the value is greater than stop. A zero step is an
// invalid-argument fault surfaced on the first pull.
func RangeStep(start, stop, step int) *Query[int] {
	return newQuery[int](&rangeIter{value: start, stop: stop, step: step})
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (it *seqIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok := it.next()
	if !ok {
		it.done = true
		var zero T
		return zero, false, nil
	}
	return val, true, nil
}

func (it *seqIter[T]) Close() error {
	it.done = true
	it.stop()
	return nil
}

type rangeIter struct {
	value int
	stop  int
	step  int
}

func (it *rangeIter) Next(_ context.Context) (int, bool, error) {
	if it.step == 0 {
		return 0, false, apperrors.InvalidArgument("step", "must be non-zero")
	}
	if it.step > 0 && it.value >= it.stop {
		return 0, false, nil
	}
	if it.step < 0 && it.value <= it.stop {
		return 0, false, nil
	}
	val := it.value
	it.value += it.step
	return val, true, nil
}

func (it *rangeIter) Close() error { return nil }
