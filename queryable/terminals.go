package queryable

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/CarterLi/queryable/errors"
)

// Collect drains the Query and returns all remaining elements as a slice.
func Collect[T any](ctx context.Context, q *Query[T]) ([]T, error) {
	var result []T
	for {
		val, ok, err := q.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Drain pulls all remaining elements and discards them.
func (q *Query[T]) Drain(ctx context.Context) error {
	for {
		_, ok, err := q.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// ForEach drains the Query, invoking fn on every element with its 0-based
// ordinal. The traversal stops on the first callback error.
func (q *Query[T]) ForEach(ctx context.Context, fn func(ctx context.Context, v T, idx int) error) error {
	if fn == nil {
		return apperrors.InvalidCallback("ForEach")
	}
	for idx := 0; ; idx++ {
		val, ok, err := q.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val, idx); err != nil {
			return err
		}
	}
}

// Reduce accumulates all elements into a single result, starting from init.
func Reduce[T, R any](ctx context.Context, q *Query[T], init R, fn func(acc R, v T) R) (R, error) {
	if fn == nil {
		return init, apperrors.InvalidCallback("Reduce")
	}
	acc := init
	for {
		val, ok, err := q.Next(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, nil
		}
		acc = fn(acc, val)
	}
}

// Fold is the seedless reduce: the first pulled element becomes the seed,
// consumed before the reducer ever runs. An empty sequence is not a fault;
// it reports ok=false with the zero value as the degenerate seed.
func Fold[T any](ctx context.Context, q *Query[T], fn func(acc T, v T) T) (T, bool, error) {
	var zero T
	if fn == nil {
		return zero, false, apperrors.InvalidCallback("Fold")
	}
	seed, ok, err := q.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	acc, err := Reduce(ctx, q, seed, fn)
	return acc, true, err
}

// ReduceRight reverses the sequence, then reduces.
func ReduceRight[T, R any](ctx context.Context, q *Query[T], init R, fn func(acc R, v T) R) (R, error) {
	return Reduce(ctx, q.Reverse(), init, fn)
}

// FoldRight reverses the sequence, then folds.
func FoldRight[T any](ctx context.Context, q *Query[T], fn func(acc T, v T) T) (T, bool, error) {
	return Fold(ctx, q.Reverse(), fn)
}

// FindIndex scans from the current cursor position and returns the 0-based
// scan-relative index of the first element satisfying fn, or -1 when the
// sequence is exhausted without a match.
func (q *Query[T]) FindIndex(ctx context.Context, fn func(v T, idx int) bool) (int, error) {
	if fn == nil {
		return -1, apperrors.InvalidCallback("FindIndex")
	}
	for idx := 0; ; idx++ {
		val, ok, err := q.Next(ctx)
		if err != nil {
			return -1, err
		}
		if !ok {
			return -1, nil
		}
		if fn(val, idx) {
			return idx, nil
		}
	}
}

// Find scans from the current cursor position and returns the first element
// satisfying fn, or ok=false when no element matches.
func (q *Query[T]) Find(ctx context.Context, fn func(v T, idx int) bool) (T, bool, error) {
	var zero T
	if fn == nil {
		return zero, false, apperrors.InvalidCallback("Find")
	}
	for idx := 0; ; idx++ {
		val, ok, err := q.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}
		if fn(val, idx) {
			return val, true, nil
		}
	}
}

// Some reports whether any element satisfies fn. Short-circuits on the
// first match.
func (q *Query[T]) Some(ctx context.Context, fn func(v T, idx int) bool) (bool, error) {
	if fn == nil {
		return false, apperrors.InvalidCallback("Some")
	}
	idx, err := q.FindIndex(ctx, fn)
	return idx != -1, err
}

// Every reports whether all elements satisfy fn: it is Some over the
// negated predicate, negated. Short-circuits on the first failure.
func (q *Query[T]) Every(ctx context.Context, fn func(v T, idx int) bool) (bool, error) {
	if fn == nil {
		return false, apperrors.InvalidCallback("Every")
	}
	some, err := q.Some(ctx, func(v T, idx int) bool { return !fn(v, idx) })
	return !some, err
}

// IndexOf skips start elements, then returns the scan-relative index of the
// first element strictly equal to item, or -1. Strict equality: a float NaN
// element never matches.
func IndexOf[T comparable](ctx context.Context, q *Query[T], item T, start int) (int, error) {
	return q.Shift(start).FindIndex(ctx, func(v T, _ int) bool { return v == item })
}

// LastIndexOf reverses the sequence, skips start elements, then searches
// forward — i.e. it searches from the end backward. The returned index is
// relative to that reversed scan.
func LastIndexOf[T comparable](ctx context.Context, q *Query[T], item T, start int) (int, error) {
	return IndexOf(ctx, q.Reverse(), item, start)
}

// Includes reports whether the sequence contains item under same-value
// equality: unlike IndexOf, a float NaN element is found by a NaN probe.
func Includes[T comparable](ctx context.Context, q *Query[T], item T, start int) (bool, error) {
	return q.Shift(start).Some(ctx, func(v T, _ int) bool {
		return v == item || (v != v && item != item)
	})
}

// Join concatenates string-coerced elements with sep between consecutive
// elements. An empty sequence yields the empty string.
func Join[T any](ctx context.Context, q *Query[T], sep string) (string, error) {
	var b strings.Builder
	first := true
	for {
		val, ok, err := q.Next(ctx)
		if err != nil {
			return b.String(), err
		}
		if !ok {
			return b.String(), nil
		}
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, val)
	}
}
