package queryable

import "context"

// Shift drops up to n leading elements, then passes the remainder through.
// If the source is exhausted before n elements were dropped, the result is
// empty. The skip happens inside the first pull, so building the stage has
// no side effect on the cursor.
func (q *Query[T]) Shift(n int) *Query[T] {
	return newQuery[T](&shiftIter[T]{source: q, n: n})
}

// Pop streams the sequence while withholding the trailing n elements. The
// first n elements prime a delay line; from then on each newly pulled
// element displaces and emits the oldest buffered one. When the source ends,
// the buffered elements — the true last n — are discarded. A source with
// fewer than n elements emits nothing. Constant memory in n.
func (q *Query[T]) Pop(n int) *Query[T] {
	if n <= 0 {
		return newQuery[T](q)
	}
	return newQuery[T](&popIter[T]{source: q, n: n})
}

// Slice emits up to end-begin elements after skipping begin, stopping at
// source exhaustion. A negative end means "drop the last -end elements after
// skipping begin". Use End for an open right bound.
func (q *Query[T]) Slice(begin, end int) *Query[T] {
	if begin < 0 {
		begin = 0
	}
	if end < 0 {
		return q.Shift(begin).Pop(-end)
	}
	take := end - begin
	if take < 0 {
		take = 0
	}
	return newQuery[T](&takeIter[T]{source: q.Shift(begin), n: take})
}

// Splice emits the elements before position start, then newItems in order,
// then skips deleteCount elements of the now-advanced sequence and emits the
// remainder. The three phases consume strictly sequential, non-overlapping
// ranges of one shared cursor; this is a destructive single-pass splice, not
// a copy. A negative deleteCount deletes nothing; End deletes the rest.
func (q *Query[T]) Splice(start, deleteCount int, newItems ...T) *Query[T] {
	if start < 0 {
		start = 0
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	return newQuery[T](&spliceIter[T]{
		source:      q,
		start:       start,
		deleteCount: deleteCount,
		items:       newItems,
	})
}

// Reverse drains the remaining sequence into an owned buffer on first pull
// and emits it back to front. O(n) memory, constant call depth. Reverse does
// not terminate on unbounded sequences.
func (q *Query[T]) Reverse() *Query[T] {
	return newQuery[T](&reverseIter[T]{source: q})
}

// --- Iterator implementations ---

type shiftIter[T any] struct {
	source  Iterator[T]
	n       int
	skipped bool
}

func (it *shiftIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if !it.skipped {
		it.skipped = true
		for i := 0; i < it.n; i++ {
			_, ok, err := it.source.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				return zero, false, nil
			}
		}
	}
	return it.source.Next(ctx)
}

func (it *shiftIter[T]) Close() error { return it.source.Close() }

type popIter[T any] struct {
	source Iterator[T]
	n      int
	win    *ring[T]
	done   bool
}

func (it *popIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	if it.win == nil {
		it.win = newRing[T](it.n)
		for it.win.len() < it.n {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				// Fewer elements than the drop window: all of them are
				// "the last n" and are withheld.
				it.done = true
				it.win.clear()
				return zero, false, nil
			}
			it.win.enqueue(val)
		}
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		// The window now holds exactly the trailing n elements; discard.
		it.done = true
		it.win.clear()
		return zero, false, nil
	}
	oldest, _ := it.win.dequeue()
	it.win.enqueue(val)
	return oldest, true, nil
}

func (it *popIter[T]) Close() error {
	if it.win != nil {
		it.win.clear()
	}
	return it.source.Close()
}

type takeIter[T any] struct {
	source Iterator[T]
	n      int
	taken  int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.taken >= it.n {
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	it.taken++
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

// spliceIter threads one cursor through three explicit phases so the ranges
// each phase consumes can never overlap or alias.
type spliceIter[T any] struct {
	source      Iterator[T]
	start       int
	deleteCount int
	items       []T

	emitted int
	itemPos int
	phase   int
	skipped bool
}

func (it *spliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		switch it.phase {
		case 0: // head of the original sequence
			if it.emitted < it.start {
				val, ok, err := it.source.Next(ctx)
				if err != nil {
					return zero, false, err
				}
				if ok {
					it.emitted++
					return val, true, nil
				}
			}
			it.phase = 1
		case 1: // inserted items
			if it.itemPos < len(it.items) {
				val := it.items[it.itemPos]
				it.itemPos++
				return val, true, nil
			}
			it.phase = 2
		case 2: // delete window, then the remainder
			if !it.skipped {
				it.skipped = true
				for i := 0; i < it.deleteCount; i++ {
					_, ok, err := it.source.Next(ctx)
					if err != nil {
						return zero, false, err
					}
					if !ok {
						break
					}
				}
			}
			return it.source.Next(ctx)
		}
	}
}

func (it *spliceIter[T]) Close() error { return it.source.Close() }

type reverseIter[T any] struct {
	source  Iterator[T]
	buf     []T
	drained bool
}

func (it *reverseIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if !it.drained {
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				break
			}
			it.buf = append(it.buf, val)
		}
		it.drained = true
	}
	if len(it.buf) == 0 {
		return zero, false, nil
	}
	val := it.buf[len(it.buf)-1]
	it.buf[len(it.buf)-1] = zero // clear reference
	it.buf = it.buf[:len(it.buf)-1]
	return val, true, nil
}

func (it *reverseIter[T]) Close() error {
	it.buf = nil
	return it.source.Close()
}
