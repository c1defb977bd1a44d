// Package lru implements a capacity-bounded cache that evicts the least
// recently used entry.
//
// A Cache pairs a key index with a recency list. The list lives in an arena
// of nodes addressed by integer handles and is bounded by two sentinel
// slots, so insertion at the front and removal from the back need no
// special cases. Get, Put and eviction are O(1).
//
// A Cache is not safe for concurrent use. Callers sharing one between
// goroutines must serialize every call, for example with a sync.Mutex.
package lru
