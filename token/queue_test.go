package token_test

import (
	"testing"

	"github.com/dbern/markup/token"
)

func TestQueueFIFO(t *testing.T) {
	q := token.NewQueue(4)
	want := []token.Kind{token.LtCaret, token.Word, token.RtCaret}
	for _, k := range want {
		if err := q.EnqueueBack(token.Token{Kind: k}); err != nil {
			t.Fatalf("EnqueueBack(%v): %v", k, err)
		}
	}
	if n := q.Len(); n != len(want) {
		t.Fatalf("Len() = %d, want %d", n, len(want))
	}
	for _, k := range want {
		got, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue() returned no token, want %v", k)
		}
		if got.Kind != k {
			t.Fatalf("Dequeue() = %v, want %v", got.Kind, k)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue() on empty queue returned a token")
	}
}

func TestQueuePeekDoesNotConsume(t *testing.T) {
	q := token.NewQueue(2)
	_ = q.EnqueueBack(token.Token{Kind: token.Space})
	p1, _ := q.Peek()
	p2, _ := q.Peek()
	if p1.Kind != token.Space || p2.Kind != token.Space {
		t.Fatalf("Peek() changed across calls: %v, %v", p1.Kind, p2.Kind)
	}
	if q.Len() != 1 {
		t.Fatalf("Peek() consumed a token, Len() = %d", q.Len())
	}
}

func TestQueueFull(t *testing.T) {
	q := token.NewQueue(2)
	if err := q.EnqueueBack(token.Token{Kind: token.Space}); err != nil {
		t.Fatal(err)
	}
	if err := q.EnqueueBack(token.Token{Kind: token.Space}); err != nil {
		t.Fatal(err)
	}
	if err := q.EnqueueBack(token.Token{Kind: token.Space}); err != token.ErrFull {
		t.Fatalf("EnqueueBack on full queue = %v, want ErrFull", err)
	}
}

func TestQueueCurrentAdvance(t *testing.T) {
	q := token.NewQueue(2)
	cur := q.Current()
	if cur == nil {
		t.Fatal("Current() returned nil on empty queue")
	}
	cur.Kind = token.Word
	cur.Data = []byte("hi")
	if err := q.Advance(); err != nil {
		t.Fatalf("Advance(): %v", err)
	}
	got, ok := q.Dequeue()
	if !ok || got.Kind != token.Word || string(got.Data) != "hi" {
		t.Fatalf("Dequeue() = %+v, ok=%v", got, ok)
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := token.NewQueue(3)
	for i := 0; i < 10; i++ {
		if err := q.EnqueueBack(token.Token{Kind: token.Number, Data: []byte{byte(i)}}); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		got, ok := q.Dequeue()
		if !ok || got.Data[0] != byte(i) {
			t.Fatalf("iteration %d: got %+v", i, got)
		}
	}
}
