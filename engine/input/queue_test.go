package input

import (
	"sync"
	"testing"
)

func TestQueueZeroValue(t *testing.T) {
	var q Queue
	q.Push(Scroll{Amount: 1})
	q.Push(Close{})
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	out := q.Drain()
	if len(out) != 2 || out[0] != (Scroll{Amount: 1}) || out[1] != (Close{}) {
		t.Fatalf("Drain() = %v", out)
	}
}

func TestQueueDrainPreservesOrder(t *testing.T) {
	q := NewQueue(2)
	in := []Event{
		CursorMove{X: 1, Y: 2},
		ButtonPress{Button: 2, Action: ActionPress},
		Scroll{Amount: 1},
		Resize{Width: 10, Height: 20},
		nil,
		Close{},
	}
	for _, ev := range in {
		q.Push(ev)
	}

	out := q.Drain()
	want := []Event{in[0], in[1], in[2], in[3], in[5]}
	if len(out) != len(want) {
		t.Fatalf("Drain() returned %d events, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("event %d = %#v, want %#v", i, out[i], want[i])
		}
	}

	if q.Len() != 0 {
		t.Fatalf("Len() = %d after drain, want 0", q.Len())
	}
	if again := q.Drain(); again != nil {
		t.Fatalf("second Drain() = %v, want nil", again)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	const producers, perProducer = 4, 250
	q := NewQueue(0)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Resize{Width: p, Height: i})
			}
		}(p)
	}
	wg.Wait()

	out := q.Drain()
	if len(out) != producers*perProducer {
		t.Fatalf("Drain() returned %d events, want %d", len(out), producers*perProducer)
	}

	// Each producer's events must stay in the order it pushed them.
	next := make([]int, producers)
	for _, ev := range out {
		r := ev.(Resize)
		if r.Height != next[r.Width] {
			t.Fatalf("producer %d: got event %d, want %d", r.Width, r.Height, next[r.Width])
		}
		next[r.Width]++
	}
}
