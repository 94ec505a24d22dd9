package queryable

import (
	"context"

	apperrors "github.com/CarterLi/queryable/errors"
)

// Map transforms each element using fn. Lazy: no element is transformed
// until pulled. fn receives the 0-based ordinal of the element within this
// traversal.
func Map[I, O any](q *Query[I], fn func(ctx context.Context, v I, idx int) (O, error)) *Query[O] {
	return newQuery[O](&mapIter[I, O]{source: q, fn: fn})
}

// FlatMap transforms each element into a slice and flattens the results one
// level.
func FlatMap[I, O any](q *Query[I], fn func(ctx context.Context, v I, idx int) ([]O, error)) *Query[O] {
	return newQuery[O](&flatMapIter[I, O]{source: q, fn: fn})
}

// Flat flattens one level: each element's members are emitted in order.
// Deeper nesting is not flattened.
func Flat[T any](q *Query[[]T]) *Query[T] {
	return FlatMap(q, func(_ context.Context, v []T, _ int) ([]T, error) {
		return v, nil
	})
}

// Filter keeps only elements that satisfy the predicate. The index passed to
// fn counts every examined element, accepted or rejected.
func (q *Query[T]) Filter(fn func(v T, idx int) bool) *Query[T] {
	return newQuery[T](&filterIter[T]{source: q, fn: fn})
}

// Concat emits all of q, then the elements of each source in order. Each
// source's elements splice in flat; use Push for trailing scalars.
func (q *Query[T]) Concat(more ...Source[T]) *Query[T] {
	iters := make([]Iterator[T], 0, len(more)+1)
	iters = append(iters, q)
	for _, src := range more {
		if src == nil {
			continue
		}
		iters = append(iters, src.Iter())
	}
	return newQuery[T](&concatIter[T]{iters: iters})
}

// Push emits all of q, then the given values.
func (q *Query[T]) Push(values ...T) *Query[T] {
	return q.Concat(FromSlice(values))
}

// Unshift emits the given values, then all of q.
func (q *Query[T]) Unshift(values ...T) *Query[T] {
	return newQuery[T](&concatIter[T]{iters: []Iterator[T]{
		&sliceIter[T]{items: values},
		q,
	}})
}

// Keys produces the 0-based ordinal of each element.
func Keys[T any](q *Query[T]) *Query[int] {
	return Map(q, func(_ context.Context, _ T, idx int) (int, error) {
		return idx, nil
	})
}

// Values is the identity stage: a new Query over the same cursor.
func (q *Query[T]) Values() *Query[T] {
	return newQuery[T](q)
}

// Entry pairs an element with its 0-based ordinal.
type Entry[T any] struct {
	Index int
	Value T
}

// Entries produces (index, element) pairs.
func Entries[T any](q *Query[T]) *Query[Entry[T]] {
	return Map(q, func(_ context.Context, v T, idx int) (Entry[T], error) {
		return Entry[T]{Index: idx, Value: v}, nil
	})
}

// Tap calls fn as a side-effect for each pulled element, then passes the
// element through unchanged. Use for logging, metrics, or mid-pipeline
// publishing.
func Tap[T any](q *Query[T], fn func(ctx context.Context, v T) error) *Query[T] {
	return newQuery[T](&tapIter[T]{source: q, fn: fn})
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I, int) (O, error)
	idx    int
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	if it.fn == nil {
		return zero, false, apperrors.InvalidCallback("Map")
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := it.fn(ctx, val, it.idx)
	it.idx++
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(context.Context, I, int) ([]O, error)
	current []O
	offset  int
	idx     int
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	if it.fn == nil {
		return zero, false, apperrors.InvalidCallback("FlatMap")
	}
	for {
		if it.offset < len(it.current) {
			val := it.current[it.offset]
			it.offset++
			return val, true, nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		out, err := it.fn(ctx, in, it.idx)
		it.idx++
		if err != nil {
			return zero, false, err
		}
		it.current = out
		it.offset = 0
	}
}

func (it *flatMapIter[I, O]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T, int) bool
	idx    int
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.fn == nil {
		return zero, false, apperrors.InvalidCallback("Filter")
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		keep := it.fn(val, it.idx)
		it.idx++
		if keep {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.fn == nil {
		return zero, false, apperrors.InvalidCallback("Tap")
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }
