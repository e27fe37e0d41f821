package chainhash

import (
	"fmt"
	"io"
	"unsafe"
)

// Bucket is one slot of the table, the head of a singly linked chain.
type Bucket struct {
	head *Entry
}

func (b *Bucket) IsEmpty() bool {
	return b.head == nil
}

// Head returns the first entry of the chain, nil if the bucket is empty.
func (b *Bucket) Head() *Entry {
	return b.head
}

// Find 在链表中按 key 精确查找
func (b *Bucket) Find(key string) (*Entry, bool) {
	for e := b.head; e != nil; e = e.next {
		if e.key == key {
			return e, true
		}
	}
	return nil, false
}

// Insert appends a new entry at the tail, or replaces the value of the entry
// that already holds key. The overwritten entry keeps its chain position.
func (b *Bucket) Insert(key, value string, tracker *AllocTracker) InsertResult {
	if b.head == nil {
		b.head = newEntry(key, value)
		tracker.alloc(b.head)
		return Inserted
	}

	curr := b.head
	for {
		if curr.key == key {
			tracker.replace(curr.value, value)
			curr.value = value
			return Overwritten
		}
		if curr.next == nil {
			break
		}
		curr = curr.next
	}

	curr.next = newEntry(key, value)
	tracker.alloc(curr.next)
	return Inserted
}

// Remove 从链表中摘除 key 对应的 entry，返回是否找到
func (b *Bucket) Remove(key string, tracker *AllocTracker) bool {
	if b.head == nil {
		return false
	}

	if b.head.key == key {
		removed := b.head
		b.head = removed.next
		tracker.free(removed)
		removed.release()
		return true
	}

	prev := b.head
	for curr := prev.next; curr != nil; prev, curr = curr, curr.next {
		if curr.key == key {
			prev.next = curr.next
			tracker.free(curr)
			curr.release()
			return true
		}
	}
	return false
}

// Len walks the chain.
func (b *Bucket) Len() int {
	n := 0
	for e := b.head; e != nil; e = e.next {
		n++
	}
	return n
}

// Range calls fn for every entry in chain order until fn returns false.
func (b *Bucket) Range(fn func(key, value string) bool) bool {
	for e := b.head; e != nil; e = e.next {
		if !fn(e.key, e.value) {
			return false
		}
	}
	return true
}

// CollectAllKeys collects the keys of the chain in order.
func (b *Bucket) CollectAllKeys() []string {
	keys := make([]string, 0)
	for e := b.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// release destroys every entry in chain order and returns how many were
// released.
func (b *Bucket) release(tracker *AllocTracker) int {
	n := 0
	curr := b.head
	b.head = nil
	for curr != nil {
		next := curr.next
		tracker.free(curr)
		curr.release()
		curr = next
		n++
	}
	return n
}

// Footprint adds this bucket's usage to metrics.
func (b *Bucket) Footprint(metrics *FootprintMetrics) {
	metrics.Meta += uint64(unsafe.Sizeof(b.head))
	if b.head == nil {
		metrics.BucketsUnoccupied++
		return
	}
	metrics.BucketsOccupied++
	for e := b.head; e != nil; e = e.next {
		metrics.Entries++
		metrics.KeyData += uint64(len(e.key))
		metrics.ValueData += uint64(len(e.value))
	}
}

// Print writes the chain as "key=value -> key=value".
func (b *Bucket) Print(w io.Writer) {
	if b.head == nil {
		fmt.Fprintln(w, "nil")
		return
	}
	for e := b.head; e != nil; e = e.next {
		if e != b.head {
			fmt.Fprint(w, " -> ")
		}
		fmt.Fprintf(w, "%q=%q", e.key, e.value)
	}
	fmt.Fprintln(w)
}
