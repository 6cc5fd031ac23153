// Package ring is a specialized adaption of [container/ring] for use by
// clock-based replacement policies: a circular doubly linked list of
// keys with a movable hand, exposing the insert-before-hand / advance /
// peek / remove-at-hand operations a CLOCK sweep needs. Unlike
// container/ring, elements carry only a Key; values and per-entry
// metadata (access bit, history flag, ...) live in the owning policy's
// entry table, keyed by the same identifier.
package ring

// node is one element of a circular list, or ring. A nil *node
// represents an empty ring; a node whose next/prev both point to
// itself represents a one-element ring.
type node[Key comparable] struct {
	next, prev *node[Key]
	key        Key
}

// link connects ring r with ring s such that r.next becomes s, and
// returns the original value of r.next. r must not be empty.
func (r *node[Key]) link(s *node[Key]) *node[Key] {
	n := r.next
	if s != nil {
		p := s.prev
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// unlink removes n elements starting at r.next and returns the removed
// subring (here always a single node, n==1). Mirrors container/ring's
// Unlink(n), which links r to r.Move(n+1): the loop must step one past
// the last element being removed, or link(p) lands back on r.next and
// splices nothing out.
func (r *node[Key]) unlink(n int) *node[Key] {
	if n <= 0 {
		return nil
	}
	p := r
	for i := 0; i <= n; i++ {
		p = p.next
	}
	return r.link(p)
}

// ClockRing is a circular sequence of keys with a hand pointing at one
// element (or nowhere, when empty). All operations below are O(1).
type ClockRing[Key comparable] struct {
	hand *node[Key]
	size int
}

// Len returns the number of keys currently in the ring.
func (c *ClockRing[Key]) Len() int { return c.size }

// Insert adds key immediately before the hand, so it becomes the
// element the hand will reach last on the next full revolution. If the
// ring was empty, the hand comes to point at the new, sole element.
func (c *ClockRing[Key]) Insert(key Key) {
	n := &node[Key]{key: key}
	n.next, n.prev = n, n
	if c.hand == nil {
		c.hand = n
	} else {
		c.hand.prev.link(n)
	}
	c.size++
}

// Peek returns the key at the hand. The ring must not be empty.
func (c *ClockRing[Key]) Peek() Key {
	assert(c.hand != nil, "ring: Peek on empty ClockRing")
	return c.hand.key
}

// Advance moves the hand forward by one element, wrapping at the end.
// The ring must not be empty.
func (c *ClockRing[Key]) Advance() {
	assert(c.hand != nil, "ring: Advance on empty ClockRing")
	c.hand = c.hand.next
}

// RemoveAtHand deletes the element currently at the hand. The hand is
// left pointing at the next element in ring order, or nil if the ring
// is now empty. The ring must not be empty on entry.
func (c *ClockRing[Key]) RemoveAtHand() Key {
	assert(c.hand != nil, "ring: RemoveAtHand on empty ClockRing")
	victim := c.hand
	key := victim.key
	c.size--
	if c.size == 0 {
		c.hand = nil
		return key
	}
	next := victim.next
	victim.prev.unlink(1)
	c.hand = next
	return key
}
