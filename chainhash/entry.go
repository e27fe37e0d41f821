package chainhash

// Entry 是链表上的一个节点，持有 key、value 以及同一个 bucket 中的下一个 Entry。
type Entry struct {
	key   string
	value string
	next  *Entry
}

func newEntry(key, value string) *Entry {
	return &Entry{
		key:   key,
		value: value,
	}
}

func (e *Entry) Key() string   { return e.key }
func (e *Entry) Value() string { return e.value }

// Next returns the following entry in the chain, or nil at the tail.
func (e *Entry) Next() *Entry { return e.next }

// release drops everything the entry owns.
func (e *Entry) release() {
	e.key = ""
	e.value = ""
	e.next = nil
}
