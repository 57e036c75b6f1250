// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package state provides a bounded deque of scheduled state handles. It is
// generic over the handle type so that the parser package can plug in its
// own ParseStateFn without this package importing it back.
package state

import "errors"

// DefaultQueueCapacity is the default number of handles a Queue can hold.
const DefaultQueueCapacity = 5

// ErrFull is returned by EnqueueBack/EnqueueFront when the queue has no free slot.
var ErrFull = errors.New("state: queue is full")

// Queue is a bounded deque of state handles supporting enqueue at either end
// and dequeue from the front. Enqueues made within one state invocation are
// appended back-to-back and execute in that order; EnqueueFront is reserved
// for "resume" states that must run before anything already scheduled.
type Queue[T any] struct {
	items []T
	head  int
	tail  int
	count int
}

// NewQueue returns a Queue with room for cap handles.
func NewQueue[T any](cap int) *Queue[T] {
	if cap <= 0 {
		cap = DefaultQueueCapacity
	}
	return &Queue[T]{items: make([]T, cap)}
}

// Len reports the number of handles currently queued.
func (q *Queue[T]) Len() int { return q.count }

// Full reports whether the queue has no free slot.
func (q *Queue[T]) Full() bool { return q.count == len(q.items) }

// EnqueueBack appends v to the tail of the queue.
func (q *Queue[T]) EnqueueBack(v T) error {
	if q.Full() {
		return ErrFull
	}
	q.items[q.tail] = v
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
	return nil
}

// EnqueueFront pushes v onto the head of the queue, so it is the next value
// Dequeue returns regardless of what is already queued.
func (q *Queue[T]) EnqueueFront(v T) error {
	if q.Full() {
		return ErrFull
	}
	q.head = (q.head - 1 + len(q.items)) % len(q.items)
	q.items[q.head] = v
	q.count++
	return nil
}

// Dequeue removes and returns the head handle.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return v, true
}
