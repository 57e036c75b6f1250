package state_test

import (
	"testing"

	"github.com/dbern/markup/state"
)

func TestQueueEnqueueBackOrder(t *testing.T) {
	q := state.NewQueue[string](4)
	for _, v := range []string{"a", "b", "c"} {
		if err := q.EnqueueBack(v); err != nil {
			t.Fatal(err)
		}
	}
	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue() = %q, %v; want %q", got, ok, want)
		}
	}
}

func TestQueueEnqueueFrontRunsNext(t *testing.T) {
	q := state.NewQueue[string](4)
	_ = q.EnqueueBack("second")
	_ = q.EnqueueBack("third")
	_ = q.EnqueueFront("resume")

	for _, want := range []string{"resume", "second", "third"} {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue() = %q, want %q", got, want)
		}
	}
}

func TestQueueFull(t *testing.T) {
	q := state.NewQueue[int](2)
	if err := q.EnqueueBack(1); err != nil {
		t.Fatal(err)
	}
	if err := q.EnqueueBack(2); err != nil {
		t.Fatal(err)
	}
	if err := q.EnqueueBack(3); err != state.ErrFull {
		t.Fatalf("EnqueueBack on full queue = %v, want ErrFull", err)
	}
	if err := q.EnqueueFront(3); err != state.ErrFull {
		t.Fatalf("EnqueueFront on full queue = %v, want ErrFull", err)
	}
}

func TestQueueEmptyDequeue(t *testing.T) {
	q := state.NewQueue[int](2)
	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue() on empty queue returned a value")
	}
}
