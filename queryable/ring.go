package queryable

// ring is a fixed-capacity circular FIFO used as the delay line for Pop.
// Capacity is rounded up to a power of two so the index wraps with a mask.
type ring[T any] struct {
	buf  []T
	head int
	size int
	mask int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	n := 1
	for n < capacity {
		n <<= 1
	}
	return &ring[T]{buf: make([]T, n), mask: n - 1}
}

func (r *ring[T]) enqueue(v T) {
	r.buf[(r.head+r.size)&r.mask] = v
	r.size++
}

func (r *ring[T]) dequeue() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero // clear reference
	r.head = (r.head + 1) & r.mask
	r.size--
	return v, true
}

func (r *ring[T]) len() int { return r.size }

func (r *ring[T]) clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}
