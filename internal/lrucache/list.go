package lrucache

// entry is an element of the recency list.
type entry[K comparable, V any] struct {
	next, prev *entry[K, V]
	list       *recencyList[K, V]

	key   K
	value V
}

// recencyList is a doubly linked list with a sentinel root. The element after
// root is the most recently used one; the element before root is the least
// recently used one.
type recencyList[K comparable, V any] struct {
	root entry[K, V]
	len  int
}

func newRecencyList[K comparable, V any]() *recencyList[K, V] {
	l := &recencyList[K, V]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *recencyList[K, V]) length() int {
	return l.len
}

// front returns the most recently used entry or nil.
func (l *recencyList[K, V]) front() *entry[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// back returns the least recently used entry or nil.
func (l *recencyList[K, V]) back() *entry[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *recencyList[K, V]) insertAfter(e, at *entry[K, V]) *entry[K, V] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

func (l *recencyList[K, V]) pushFront(key K, value V) *entry[K, V] {
	return l.insertAfter(&entry[K, V]{key: key, value: value}, &l.root)
}

func (l *recencyList[K, V]) remove(e *entry[K, V]) {
	if e.list != l {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

func (l *recencyList[K, V]) moveToFront(e *entry[K, V]) {
	if e.list != l || l.root.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
}

// nextEntry walks from MRU towards LRU.
func (e *entry[K, V]) nextEntry() *entry[K, V] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}
