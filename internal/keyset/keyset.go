// Package keyset implements an ordered set of keys with O(1) expected
// membership, move-to-front, pop-tail, and erase, used by LRU for its
// resident list and by CAR/CART for their B1/B2 ghost histories.
package keyset

import "container/list"

// KeySet is an ordered set of keys: a doubly linked list for order plus
// a map for O(1) lookup, in the style of a textbook LRU list. Create one
// with [New]; the zero value has no list or map and is not usable.
type KeySet[Key comparable] struct {
	order *list.List
	index map[Key]*list.Element
}

// New returns an empty KeySet.
func New[Key comparable]() *KeySet[Key] {
	return &KeySet[Key]{
		order: list.New(),
		index: make(map[Key]*list.Element),
	}
}

// Len returns the number of keys in the set.
func (s *KeySet[Key]) Len() int { return len(s.index) }

// Contains reports whether key is a member of the set.
func (s *KeySet[Key]) Contains(key Key) bool {
	_, ok := s.index[key]
	return ok
}

// Touch makes key the most-recently-used member: if present it is
// detached from its current position, then it is (re)inserted at the
// front.
func (s *KeySet[Key]) Touch(key Key) {
	if elem, ok := s.index[key]; ok {
		s.order.MoveToFront(elem)
		return
	}
	s.index[key] = s.order.PushFront(key)
}

// PopTail removes and returns the least-recently-used key. The set must
// not be empty.
func (s *KeySet[Key]) PopTail() Key {
	assert(s.order.Len() > 0, "keyset: PopTail on empty KeySet")
	elem := s.order.Back()
	key := elem.Value.(Key)
	s.order.Remove(elem)
	delete(s.index, key)
	return key
}

// Erase removes a known-present key from the set. Erasing an absent key
// is a programmer fault.
func (s *KeySet[Key]) Erase(key Key) {
	elem, ok := s.index[key]
	assert(ok, "keyset: Erase of absent key")
	s.order.Remove(elem)
	delete(s.index, key)
}
