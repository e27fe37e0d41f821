package chainhash

// FootprintMetrics 存储footprint计算的各项指标。
type FootprintMetrics struct {
	Meta              uint64 // table header and bucket slot pointers
	BucketsOccupied   uint64
	BucketsUnoccupied uint64
	Entries           uint64
	KeyData           uint64
	ValueData         uint64
}

// AllocTracker counts entries and key/value bytes that are still owned by
// some table. A tracker may be shared by a table and every table derived
// from it by Resize; once all of them are destroyed it reads zero.
type AllocTracker struct {
	entries int64
	bytes   int64
	allocs  int64
	frees   int64
}

func NewAllocTracker() *AllocTracker {
	return &AllocTracker{}
}

func (a *AllocTracker) alloc(e *Entry) {
	if a == nil {
		return
	}
	a.entries++
	a.allocs++
	a.bytes += int64(len(e.key) + len(e.value))
}

func (a *AllocTracker) free(e *Entry) {
	if a == nil {
		return
	}
	a.entries--
	a.frees++
	a.bytes -= int64(len(e.key) + len(e.value))
}

// replace accounts a value swap on overwrite.
func (a *AllocTracker) replace(old, new string) {
	if a == nil {
		return
	}
	a.bytes += int64(len(new) - len(old))
}

// LiveEntries is the number of entries created but not yet released.
func (a *AllocTracker) LiveEntries() int64 { return a.entries }

// LiveBytes is the key plus value bytes held by live entries.
func (a *AllocTracker) LiveBytes() int64 { return a.bytes }

// Allocs is the total number of entries ever created.
func (a *AllocTracker) Allocs() int64 { return a.allocs }

// Frees is the total number of entries ever released.
func (a *AllocTracker) Frees() int64 { return a.frees }
