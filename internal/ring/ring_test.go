package ring

import "testing"

func TestClockRingInsertPeekAdvance(t *testing.T) {
	var c ClockRing[int]
	if got, want := c.Len(), 0; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	c.Insert(1)
	if got, want := c.Peek(), 1; got != want {
		t.Fatalf("Peek() = %d, want %d", got, want)
	}
	c.Insert(2)
	if got, want := c.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	// The hand did not move on Insert.
	if got, want := c.Peek(), 1; got != want {
		t.Fatalf("Peek() after Insert = %d, want %d (hand should not move)", got, want)
	}
	c.Advance()
	if got, want := c.Peek(), 2; got != want {
		t.Fatalf("Peek() after Advance = %d, want %d", got, want)
	}
	c.Advance()
	if got, want := c.Peek(), 1; got != want {
		t.Fatalf("Peek() after wraparound = %d, want %d", got, want)
	}
}

func TestClockRingRemoveAtHand(t *testing.T) {
	var c ClockRing[int]
	c.Insert(1)
	c.Insert(2)
	c.Insert(3)
	c.Advance() // hand -> 2
	if got, want := c.RemoveAtHand(), 2; got != want {
		t.Fatalf("RemoveAtHand() = %d, want %d", got, want)
	}
	if got, want := c.Len(), 2; got != want {
		t.Fatalf("Len() after remove = %d, want %d", got, want)
	}
	if got, want := c.Peek(), 3; got != want {
		t.Fatalf("Peek() after removing hand = %d, want %d (hand lands on successor)", got, want)
	}
}

func TestClockRingRemoveAtHandSplicesOutNode(t *testing.T) {
	var c ClockRing[int]
	c.Insert(1)
	c.Insert(2)
	c.Insert(3)
	c.Insert(4)
	c.Advance() // hand -> 2
	c.RemoveAtHand()
	if got, want := c.Len(), 3; got != want {
		t.Fatalf("Len() after remove = %d, want %d", got, want)
	}
	// A full revolution and a half must never land on the removed key,
	// and must visit only the 3 survivors in ring order, proving the
	// removed node was actually spliced out rather than left linked in
	// as a phantom the hand revisits.
	want := []int{3, 4, 1, 3, 4, 1}
	for i, w := range want {
		if got := c.Peek(); got != w {
			t.Fatalf("Peek() at step %d = %d, want %d", i, got, w)
		}
		c.Advance()
	}
}

func TestClockRingRemoveLastElement(t *testing.T) {
	var c ClockRing[string]
	c.Insert("only")
	if got, want := c.RemoveAtHand(), "only"; got != want {
		t.Fatalf("RemoveAtHand() = %q, want %q", got, want)
	}
	if got, want := c.Len(), 0; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	c.Insert("new")
	if got, want := c.Peek(), "new"; got != want {
		t.Fatalf("Peek() after reinsert into an emptied ring = %q, want %q", got, want)
	}
}

func TestClockRingPeekOnEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Peek() on empty ring should panic")
		}
	}()
	var c ClockRing[int]
	c.Peek()
}
