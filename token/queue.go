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

package token

import "errors"

// DefaultQueueCapacity is the default number of tokens a Queue can hold
// before EnqueueBack reports ErrFull.
const DefaultQueueCapacity = 32

// ErrFull is returned by EnqueueBack/Advance when the queue has no free slot.
var ErrFull = errors.New("token: queue is full")

// Queue is a bounded FIFO of Tokens. It is not safe for concurrent use; the
// scheduler never has two goroutines touching the same Queue at once.
type Queue struct {
	items []Token
	head  int
	tail  int
	count int
}

// NewQueue returns a Queue with room for cap tokens.
func NewQueue(cap int) *Queue {
	if cap <= 0 {
		cap = DefaultQueueCapacity
	}
	return &Queue{items: make([]Token, cap)}
}

// Len reports the number of tokens currently queued.
func (q *Queue) Len() int { return q.count }

// Full reports whether the queue has no free slot.
func (q *Queue) Full() bool { return q.count == len(q.items) }

// Peek returns the head token without consuming it.
func (q *Queue) Peek() (Token, bool) {
	if q.count == 0 {
		return Token{}, false
	}
	return q.items[q.head], true
}

// Dequeue removes and returns the head token.
func (q *Queue) Dequeue() (Token, bool) {
	if q.count == 0 {
		return Token{}, false
	}
	t := q.items[q.head]
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return t, true
}

// EnqueueBack appends t to the tail of the queue. It reports ErrFull if the
// queue has no free slot.
func (q *Queue) EnqueueBack(t Token) error {
	if q.Full() {
		return ErrFull
	}
	q.items[q.tail] = t
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
	return nil
}

// Current reserves the tail slot for in-place population and returns a
// pointer into the backing array, without yet counting it as enqueued. The
// lexer writes directly into the returned Token via its Kind/Data fields,
// then calls Advance to commit the write. Current returns nil if the queue
// is full.
//
// This mirrors the source lexer's current()/advance() pattern: classify
// bytes into the reserved slot, then commit once a full token has been
// recognized.
func (q *Queue) Current() *Token {
	if q.Full() {
		return nil
	}
	return &q.items[q.tail]
}

// Advance commits the slot most recently returned by Current, making it
// visible to Peek/Dequeue. It reports ErrFull if the queue was already full
// (i.e. Current would have returned nil).
func (q *Queue) Advance() error {
	if q.Full() {
		return ErrFull
	}
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
	return nil
}
