package chainhash

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"chainhash/logutil"
)

// Table is a fixed bucket count hash table with separate chaining.
//
// Table is not safe for concurrent use. Resizing never happens on its own;
// callers decide when to call Resize.
type Table struct {
	capacity int
	count    int
	buckets  []Bucket

	hasher    HashFunc
	logger    *zap.Logger
	tracker   *AllocTracker
	destroyed bool
}

type Option func(*Table)

// WithHashFunc replaces djb2 as the bucket hash.
func WithHashFunc(fn HashFunc) Option {
	return func(t *Table) {
		if fn != nil {
			t.hasher = fn
		}
	}
}

// WithLogger sets the logger that receives overwrite and not-found notices.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithTracker enables allocation accounting. The tracker is inherited by the
// table returned from Resize.
func WithTracker(tracker *AllocTracker) Option {
	return func(t *Table) {
		t.tracker = tracker
	}
}

// New creates a table with exactly capacity empty buckets.
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity < MinCapacity {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d, must be at least %d", capacity, MinCapacity)
	}
	t := &Table{
		capacity: capacity,
		buckets:  make([]Bucket, capacity),
		hasher:   Djb2,
		logger:   logutil.GetGlobalLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *Table) options() []Option {
	return []Option{WithHashFunc(t.hasher), WithLogger(t.logger), WithTracker(t.tracker)}
}

func (t *Table) mustAlive() {
	if t.destroyed {
		panic(ErrTableDestroyed)
	}
}

func (t *Table) bucket(key string) *Bucket {
	return &t.buckets[index(t.hasher, key, t.capacity)]
}

// Insert stores value under key. An existing key keeps its chain position and
// only has its value replaced; that case is reported as Overwritten.
func (t *Table) Insert(key, value string) InsertResult {
	t.mustAlive()
	res := t.bucket(key).Insert(key, value, t.tracker)
	switch res {
	case Inserted:
		t.count++
	case Overwritten:
		t.logger.Info("key is already in use, value will be overwritten",
			zap.String("key", key))
	}
	return res
}

// Retrieve returns the value stored under key. ok is false when the key is
// absent, which is distinct from a stored empty value.
func (t *Table) Retrieve(key string) (value string, ok bool) {
	t.mustAlive()
	e, ok := t.bucket(key).Find(key)
	if !ok {
		return "", false
	}
	return e.value, true
}

// Remove deletes key and reports whether it was present.
func (t *Table) Remove(key string) bool {
	t.mustAlive()
	if !t.bucket(key).Remove(key, t.tracker) {
		t.logger.Debug("key not found", zap.String("key", key))
		return false
	}
	t.count--
	return true
}

// Destroy releases every entry and the bucket array. The table must not be
// used afterwards.
func (t *Table) Destroy() {
	t.mustAlive()
	for i := range t.buckets {
		t.count -= t.buckets[i].release(t.tracker)
	}
	t.buckets = nil
	t.destroyed = true
}

// Resize moves every entry into a new table with twice the capacity and
// destroys t. Only the returned table may be used afterwards.
func (t *Table) Resize() (*Table, error) {
	t.mustAlive()
	nt, err := New(t.capacity*2, t.options()...)
	if err != nil {
		return nil, err
	}
	for i := range t.buckets {
		for e := t.buckets[i].head; e != nil; e = e.next {
			nt.Insert(e.key, e.value)
		}
	}
	oldCapacity := t.capacity
	t.Destroy()
	t.logger.Debug("hash table resized",
		zap.Int("from", oldCapacity),
		zap.Int("to", nt.capacity),
		zap.Int("count", nt.count))
	return nt, nil
}

func (t *Table) Capacity() int {
	t.mustAlive()
	return t.capacity
}

// Count is the number of distinct keys stored.
func (t *Table) Count() int {
	t.mustAlive()
	return t.count
}

// LoadFactor is count / capacity. It is informational only.
func (t *Table) LoadFactor() float64 {
	t.mustAlive()
	return float64(t.count) / float64(t.capacity)
}

// ChainLen returns the length of the chain in bucket idx.
func (t *Table) ChainLen(idx int) int {
	t.mustAlive()
	return t.buckets[idx].Len()
}

// BucketKeys returns the keys of bucket idx in chain order.
func (t *Table) BucketKeys(idx int) []string {
	t.mustAlive()
	return t.buckets[idx].CollectAllKeys()
}

// Range visits entries in bucket index order, then chain order, until fn
// returns false.
func (t *Table) Range(fn func(key, value string) bool) {
	t.mustAlive()
	for i := range t.buckets {
		if !t.buckets[i].Range(fn) {
			return
		}
	}
}

// Footprint calculates the memory usage of buckets, keys and values.
func (t *Table) Footprint(metrics *FootprintMetrics) {
	t.mustAlive()
	metrics.Meta += uint64(unsafe.Sizeof(*t))
	for i := range t.buckets {
		t.buckets[i].Footprint(metrics)
	}
}

// Dump writes the bucket layout, one line per bucket.
func (t *Table) Dump(w io.Writer) {
	t.mustAlive()
	fmt.Fprintf(w, "capacity: %d, count: %d\n", t.capacity, t.count)
	for i := range t.buckets {
		fmt.Fprintf(w, "\t[%d] ", i)
		t.buckets[i].Print(w)
	}
}
