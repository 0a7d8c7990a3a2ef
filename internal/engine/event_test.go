package engine

import "testing"

func TestEventInvokesInOrder(t *testing.T) {
	var e Event
	var order []int
	e.AddListener(func() { order = append(order, 1) })
	e.AddListener(nil)
	e.AddListener(func() { order = append(order, 2) })

	e.Invoke()

	if e.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.GetListenerCount())
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected listeners in order [1 2], got %v", order)
	}

	e.RemoveAllListeners()
	e.Invoke()
	if len(order) != 2 {
		t.Error("Cleared event should not call anything")
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[float32]
	var got float32
	e.AddListener(func(v float32) { got += v })
	e.AddListener(func(v float32) { got += v })

	e.Invoke(1.5)

	if got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
}
