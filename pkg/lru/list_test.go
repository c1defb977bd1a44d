package lru

import "testing"

func collect(l *orderList[string, int]) []string {
	var keys []string
	l.walk(func(h handle) bool {
		keys = append(keys, l.nodes[h].key)
		return true
	})
	return keys
}

func push(l *orderList[string, int], key string) handle {
	h := l.alloc(key, 0)
	l.insertAtFront(h)
	return h
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOrderList_Empty(t *testing.T) {
	l := newOrderList[string, int](4)

	if l.nodes[headHandle].next != tailHandle || l.nodes[tailHandle].prev != headHandle {
		t.Error("Sentinels should point at each other")
	}
	if l.back() != noHandle {
		t.Error("back on empty list should return noHandle")
	}
	if l.size != 0 {
		t.Errorf("Expected size 0, got %d", l.size)
	}
}

func TestOrderList_InsertAtFront(t *testing.T) {
	l := newOrderList[string, int](4)

	h1 := push(l, "key1")
	if l.size != 1 {
		t.Errorf("Expected size 1, got %d", l.size)
	}
	if l.nodes[headHandle].next != h1 || l.nodes[tailHandle].prev != h1 {
		t.Error("Single node should sit between both sentinels")
	}

	h2 := push(l, "key2")
	if l.nodes[headHandle].next != h2 {
		t.Error("New node should follow the head sentinel")
	}
	if l.back() != h1 {
		t.Error("Old node should precede the tail sentinel")
	}
	if l.nodes[h2].next != h1 || l.nodes[h1].prev != h2 {
		t.Error("Nodes not properly linked")
	}
}

func TestOrderList_Detach(t *testing.T) {
	l := newOrderList[string, int](4)

	h1 := push(l, "key1")
	h2 := push(l, "key2")
	h3 := push(l, "key3")

	// Detach middle node
	l.detach(h2)
	if l.size != 2 {
		t.Errorf("Expected size 2, got %d", l.size)
	}
	if l.nodes[h3].next != h1 || l.nodes[h1].prev != h3 {
		t.Error("Neighbours of detached node should be joined")
	}
	if l.nodes[h2].prev != noHandle || l.nodes[h2].next != noHandle {
		t.Error("Detached node should keep no links")
	}

	// Detaching twice is a no-op
	l.detach(h2)
	if l.size != 2 {
		t.Errorf("Expected size 2 after repeated detach, got %d", l.size)
	}

	// Detach front
	l.detach(h3)
	if l.nodes[headHandle].next != h1 {
		t.Error("key1 should be front")
	}

	// Detach last node
	l.detach(h1)
	if l.nodes[headHandle].next != tailHandle || l.nodes[tailHandle].prev != headHandle {
		t.Error("List should be empty")
	}
	if l.size != 0 {
		t.Errorf("Expected size 0, got %d", l.size)
	}
}

func TestOrderList_MoveToFront(t *testing.T) {
	l := newOrderList[string, int](4)

	h1 := push(l, "key1")
	h2 := push(l, "key2")
	h3 := push(l, "key3")

	// Move back to front
	l.moveToFront(h1)
	if got := collect(l); !equalKeys(got, []string{"key1", "key3", "key2"}) {
		t.Errorf("Unexpected order %v", got)
	}
	if l.back() != h2 {
		t.Error("key2 should be back")
	}

	// Moving front to front should be no-op
	l.moveToFront(h1)
	if got := collect(l); !equalKeys(got, []string{"key1", "key3", "key2"}) {
		t.Errorf("Unexpected order %v", got)
	}

	// Move middle to front
	l.moveToFront(h3)
	if got := collect(l); !equalKeys(got, []string{"key3", "key1", "key2"}) {
		t.Errorf("Unexpected order %v", got)
	}
	if l.size != 3 {
		t.Errorf("Expected size 3, got %d", l.size)
	}
}

func TestOrderList_ReleaseRecyclesSlot(t *testing.T) {
	l := newOrderList[string, int](2)

	push(l, "key1")
	h2 := push(l, "key2")
	arena := len(l.nodes)

	l.detach(h2)
	l.release(h2)
	if l.nodes[h2].key != "" {
		t.Error("Released slot should be cleared")
	}

	h3 := push(l, "key3")
	if h3 != h2 {
		t.Errorf("Expected slot %d to be reused, got %d", h2, h3)
	}
	if len(l.nodes) != arena {
		t.Errorf("Arena should not grow when a free slot exists, got %d nodes", len(l.nodes))
	}
	if got := collect(l); !equalKeys(got, []string{"key3", "key1"}) {
		t.Errorf("Unexpected order %v", got)
	}
}

func TestOrderList_LRUBehavior(t *testing.T) {
	l := newOrderList[string, int](8)

	// Simulate LRU cache behavior
	keys := []string{"a", "b", "c", "d", "e"}
	handles := make(map[string]handle)

	for _, key := range keys {
		handles[key] = push(l, key)
	}

	// Access "a" and "c"
	l.moveToFront(handles["a"])
	l.moveToFront(handles["c"])

	// LRU order should be: c, a, e, d, b
	back := l.back()
	if l.nodes[back].key != "b" {
		t.Errorf("Expected to evict 'b', got '%s'", l.nodes[back].key)
	}
	l.detach(back)

	back = l.back()
	if l.nodes[back].key != "d" {
		t.Errorf("Expected to evict 'd', got '%s'", l.nodes[back].key)
	}
}
