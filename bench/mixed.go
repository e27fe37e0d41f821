package bench

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"chainhash/chainhash"
	"chainhash/logutil"
)

// Options controls a workload run.
type Options struct {
	NumData   int
	ReadRatio int // percentage of mixed operations that are lookups
	// MaxLoadFactor makes the driver call Resize once count/capacity goes
	// above it. Zero never resizes.
	MaxLoadFactor float64
	Capacity      int
	Seed          int64
	TableOptions  []chainhash.Option
}

type Report struct {
	InsertElapsed time.Duration
	MixedElapsed  time.Duration
	Reads         int
	Writes        int
	Resizes       int
	Capacity      int
	Count         int
	LoadFactor    float64
	NotFound      []string
	Footprint     chainhash.FootprintMetrics
}

// Print 打印测试结果
func (r *Report) Print(w io.Writer, numData int) {
	printPhase(w, "Insert", numData, r.InsertElapsed)
	printPhase(w, "Mixed", r.Reads+r.Writes, r.MixedElapsed)
	fmt.Fprintf(w, "reads: %d, writes: %d, resizes: %d\n", r.Reads, r.Writes, r.Resizes)
	fmt.Fprintf(w, "capacity: %d, count: %d, load factor: %.2f\n", r.Capacity, r.Count, r.LoadFactor)
	fmt.Fprintf(w, "buckets occupied: %d, unoccupied: %d, key bytes: %d, value bytes: %d\n",
		r.Footprint.BucketsOccupied, r.Footprint.BucketsUnoccupied, r.Footprint.KeyData, r.Footprint.ValueData)
	if len(r.NotFound) == 0 {
		fmt.Fprintln(w, "All keys found")
		return
	}
	fmt.Fprintf(w, "%d keys not found: %v\n", len(r.NotFound), r.NotFound)
}

type runner struct {
	opts    Options
	ht      *chainhash.Table
	resizes int
}

func (r *runner) maybeResize() error {
	if r.opts.MaxLoadFactor <= 0 || r.ht.LoadFactor() <= r.opts.MaxLoadFactor {
		return nil
	}
	ht, err := r.ht.Resize()
	if err != nil {
		return err
	}
	r.ht = ht
	r.resizes++
	return nil
}

func (r *runner) insert(key, value string) error {
	r.ht.Insert(key, value)
	return r.maybeResize()
}

// Run inserts NumData shuffled keys, then runs NumData mixed operations over
// them. Lookups check the stored value; writes remove the key and insert it
// again with a new value.
func Run(opts Options) (*Report, error) {
	if opts.NumData < 1 {
		return nil, errors.Errorf("num data %d must be positive", opts.NumData)
	}
	if opts.ReadRatio < 0 || opts.ReadRatio > 100 {
		return nil, errors.Errorf("read ratio %d out of [0, 100]", opts.ReadRatio)
	}
	ht, err := chainhash.New(opts.Capacity, opts.TableOptions...)
	if err != nil {
		return nil, err
	}
	r := &runner{opts: opts, ht: ht}
	rnd := rand.New(rand.NewSource(opts.Seed))
	keys := generateShuffledKeys(opts.NumData, rnd)
	values := make(map[string]string, len(keys))
	report := &Report{}

	logger := logutil.GetGlobalLogger()
	logger.Info("insert phase starts", zap.Int("num-data", opts.NumData), zap.Int("capacity", opts.Capacity))
	start := time.Now()
	for i, key := range keys {
		values[key] = valueOf(i)
		if err := r.insert(key, values[key]); err != nil {
			return nil, err
		}
	}
	report.InsertElapsed = time.Since(start)

	logger.Info("mixed phase starts", zap.Int("read-ratio", opts.ReadRatio))
	start = time.Now()
	for i, key := range keys {
		if rnd.Intn(100) < opts.ReadRatio {
			report.Reads++
			if v, ok := r.ht.Retrieve(key); !ok || v != values[key] {
				report.NotFound = append(report.NotFound, key)
			}
			continue
		}
		report.Writes++
		if !r.ht.Remove(key) {
			report.NotFound = append(report.NotFound, key)
		}
		values[key] = valueOf(opts.NumData + i)
		if err := r.insert(key, values[key]); err != nil {
			return nil, err
		}
	}
	report.MixedElapsed = time.Since(start)

	report.Resizes = r.resizes
	report.Capacity = r.ht.Capacity()
	report.Count = r.ht.Count()
	report.LoadFactor = r.ht.LoadFactor()
	r.ht.Footprint(&report.Footprint)
	r.ht.Destroy()
	return report, nil
}
