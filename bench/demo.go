package bench

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"chainhash/chainhash"
)

var demoPairs = [][2]string{
	{"line_1", "Tiny hash table"},
	{"line_2", "Filled beyond capacity"},
	{"line_3", "Linked list saves the day!"},
}

// Demo fills a table past its capacity so chains form, reads every key
// back, doubles the table and tears it down.
func Demo(w io.Writer, capacity int, opts ...chainhash.Option) error {
	ht, err := chainhash.New(capacity, opts...)
	if err != nil {
		return err
	}

	for _, p := range demoPairs {
		ht.Insert(p[0], p[1])
	}
	for _, p := range demoPairs {
		v, ok := ht.Retrieve(p[0])
		if !ok {
			return errors.Errorf("key %q lost before resize", p[0])
		}
		fmt.Fprintln(w, v)
	}

	oldCapacity := ht.Capacity()
	if ht, err = ht.Resize(); err != nil {
		return err
	}
	newCapacity := ht.Capacity()
	fmt.Fprintf(w, "\nResizing hash table from %d to %d.\n", oldCapacity, newCapacity)

	for _, p := range demoPairs {
		if v, ok := ht.Retrieve(p[0]); !ok || v != p[1] {
			return errors.Errorf("key %q lost after resize", p[0])
		}
	}
	ht.Destroy()
	return nil
}
