package lru

// handle identifies a slot in the node arena.
type handle int

const (
	// headHandle is the sentinel before the most recently used entry.
	headHandle handle = 0
	// tailHandle is the sentinel after the least recently used entry.
	tailHandle handle = 1
	// noHandle marks an unlinked slot.
	noHandle handle = -1

	sentinelCount = 2
	// maxPrealloc bounds the arena allocated up front for large capacities.
	maxPrealloc = 1024
)

// node is one slot of the arena. Sentinel slots never carry a key or value.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  handle
	next  handle
}

// orderList is a doubly-linked recency list stored in a growable slice.
// Links are arena handles rather than pointers, so slots can be recycled
// after eviction without leaving references behind.
type orderList[K comparable, V any] struct {
	nodes []node[K, V]
	free  []handle
	size  int
}

func newOrderList[K comparable, V any](capacity int) *orderList[K, V] {
	prealloc := capacity + 1
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	l := &orderList[K, V]{
		nodes: make([]node[K, V], sentinelCount, prealloc+sentinelCount),
	}
	l.nodes[headHandle] = node[K, V]{prev: noHandle, next: tailHandle}
	l.nodes[tailHandle] = node[K, V]{prev: headHandle, next: noHandle}
	return l
}

// alloc takes a free slot (or grows the arena) and fills it. The returned
// slot is not linked yet.
func (l *orderList[K, V]) alloc(key K, value V) handle {
	n := node[K, V]{key: key, value: value, prev: noHandle, next: noHandle}
	if last := len(l.free) - 1; last >= 0 {
		h := l.free[last]
		l.free = l.free[:last]
		l.nodes[h] = n
		return h
	}
	l.nodes = append(l.nodes, n)
	return handle(len(l.nodes) - 1)
}

// release returns an unlinked slot to the free list and clears its payload.
func (l *orderList[K, V]) release(h handle) {
	l.nodes[h] = node[K, V]{prev: noHandle, next: noHandle}
	l.free = append(l.free, h)
}

// detach removes h from its position and joins its neighbours directly.
// Calling it on an unlinked slot is a no-op.
// Time complexity: O(1)
func (l *orderList[K, V]) detach(h handle) {
	n := &l.nodes[h]
	if n.prev == noHandle || n.next == noHandle {
		return
	}
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	n.prev = noHandle
	n.next = noHandle
	l.size--
}

// insertAtFront splices h between the head sentinel and its current next.
// h must be unlinked.
// Time complexity: O(1)
func (l *orderList[K, V]) insertAtFront(h handle) {
	first := l.nodes[headHandle].next
	n := &l.nodes[h]
	n.prev = headHandle
	n.next = first
	l.nodes[first].prev = h
	l.nodes[headHandle].next = h
	l.size++
}

// moveToFront promotes h to the most recently used position.
// Time complexity: O(1)
func (l *orderList[K, V]) moveToFront(h handle) {
	if l.nodes[headHandle].next == h {
		return // Already at front
	}
	l.detach(h)
	l.insertAtFront(h)
}

// back returns the least recently used slot, or noHandle if the list is
// empty.
func (l *orderList[K, V]) back() handle {
	if h := l.nodes[tailHandle].prev; h != headHandle {
		return h
	}
	return noHandle
}

// walk visits live slots from most to least recently used until visit
// returns false.
func (l *orderList[K, V]) walk(visit func(h handle) bool) {
	for h := l.nodes[headHandle].next; h != tailHandle; h = l.nodes[h].next {
		if !visit(h) {
			return
		}
	}
}
