// Package spfa work-queue implementation: a growable ring-buffer deque
// holding nodes that await relaxation.
package spfa

// minDequeCap is the initial ring capacity on first push.
const minDequeCap = 8

// deque is a double-ended queue over a circular buffer.
//
// The engine needs exactly three operations — pushBack, pushFront, and
// popFront — all O(1) amortized. Duplicate entries are permitted by
// design: the engine relies on the distance table, not the queue, to
// neutralize stale entries.
type deque[T any] struct {
	buf  []T
	head int // index of the front element when n > 0
	n    int // number of stored elements
}

// len reports the number of queued elements.
func (d *deque[T]) len() int { return d.n }

// front returns the front element without removing it.
func (d *deque[T]) front() (T, bool) {
	if d.n == 0 {
		var zero T

		return zero, false
	}

	return d.buf[d.head], true
}

// pushBack appends v at the back of the queue.
func (d *deque[T]) pushBack(v T) {
	d.grow()
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

// pushFront prepends v at the front of the queue.
func (d *deque[T]) pushFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// popFront removes and returns the front element.
func (d *deque[T]) popFront() (T, bool) {
	if d.n == 0 {
		var zero T

		return zero, false
	}

	v := d.buf[d.head]
	var zero T
	d.buf[d.head] = zero // release the reference for GC
	d.head = (d.head + 1) % len(d.buf)
	d.n--

	return v, true
}

// grow doubles the ring when full, relinearizing elements at index 0.
func (d *deque[T]) grow() {
	if d.n < len(d.buf) {
		return
	}

	capacity := len(d.buf) * 2
	if capacity == 0 {
		capacity = minDequeCap
	}

	next := make([]T, capacity)
	for i := 0; i < d.n; i++ {
		next[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = next
	d.head = 0
}
