// Package queryable provides a lazy, pull-based sequence-query engine.
//
// A Query is a single-pass cursor over an upstream sequence that exposes
// array-like combinators (Map, Filter, Slice, Splice, Reduce, ...) without
// materializing the source. No work happens until elements are pulled via a
// terminal such as Collect, ForEach, or Reduce; each stage pulls from its
// upstream on demand, one element at a time.
//
// Every combinator returns a *Query, so stages chain uniformly no matter
// which stage produced the current sequence. A Query is also an Iterator and
// a Source, so any stage output feeds any combinator — including combinators
// over sources that are not this engine's own type.
//
// # Single-pass semantics
//
// A Query owns exactly one live cursor. Traversing it with Seq, pulling it
// with Next, and draining it with a terminal all advance the same cursor;
// there is no independent restart. Elements that have been pulled cannot be
// re-observed except by a stage that explicitly buffered them (Pop's delay
// window, Reverse's drain buffer).
//
// # Operators
//
// Construction:
//
//   - From, FromIterator, FromSlice, FromSeq, Of: wrap an existing source
//   - Range, RangeFrom, RangeStep: arithmetic progressions
//
// Transformation (lazy, constant memory):
//
//   - Map, FlatMap, Flat: transform and flatten one level
//   - Filter: keep elements matching a predicate
//   - Concat, Push, Unshift: append/prepend sources and scalars
//   - Keys, Values, Entries: ordinal and pair projections
//   - Tap, Logged, Traced: side-effects and observability pass-throughs
//
// Windowed (bounded lookahead or eager pre-consumption):
//
//   - Shift: drop up to n leading elements
//   - Pop: drop the trailing n elements with an n-element delay line
//   - Slice, Splice: positional windows over the shared cursor
//   - Reverse: full drain, emitted back to front
//
// Terminals:
//
//   - Collect, Drain, ForEach, Join
//   - Reduce, Fold, ReduceRight, FoldRight
//   - Find, FindIndex, Some, Every, IndexOf, LastIndexOf, Includes
//
// # Usage
//
//	q := queryable.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := queryable.Map(q, func(_ context.Context, n, _ int) (int, error) {
//	    return n * 2, nil
//	})
//	kept := doubled.Filter(func(n, _ int) bool { return n > 4 }).Pop(1)
//	results, _ := queryable.Collect(ctx, kept)
//
// A Query is not safe for concurrent use: cursor state is exclusively owned
// by one chain of stages and must be pulled from a single goroutine.
package queryable
