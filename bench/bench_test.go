package bench

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainhash/chainhash"
)

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	tracker := chainhash.NewAllocTracker()
	require.NoError(t, Demo(&buf, 2, chainhash.WithTracker(tracker)))

	want := "Tiny hash table\n" +
		"Filled beyond capacity\n" +
		"Linked list saves the day!\n" +
		"\nResizing hash table from 2 to 4.\n"
	assert.Equal(t, want, buf.String())
	assert.Zero(t, tracker.LiveEntries())
	assert.Zero(t, tracker.LiveBytes())
}

func TestDemoInvalidCapacity(t *testing.T) {
	var buf bytes.Buffer
	err := Demo(&buf, 0)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestGenerateShuffledKeys(t *testing.T) {
	keys := generateShuffledKeys(100, rand.New(rand.NewSource(7)))
	require.Len(t, keys, 100)
	assert.ElementsMatch(t, generateSerializedKeys(100), keys)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name          string
		readRatio     int
		maxLoadFactor float64
		capacity      int
		wantCapacity  int
	}{
		{name: "read only no resize", readRatio: 100, capacity: 8, wantCapacity: 8},
		{name: "write only no resize", readRatio: 0, capacity: 8, wantCapacity: 8},
		// 1000 keys need 2048 buckets to stay at or under 0.75
		{name: "mixed with resize", readRatio: 50, maxLoadFactor: 0.75, capacity: 2, wantCapacity: 2048},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := chainhash.NewAllocTracker()
			report, err := Run(Options{
				NumData:       1000,
				ReadRatio:     tt.readRatio,
				MaxLoadFactor: tt.maxLoadFactor,
				Capacity:      tt.capacity,
				Seed:          42,
				TableOptions:  []chainhash.Option{chainhash.WithTracker(tracker)},
			})
			require.NoError(t, err)
			assert.Empty(t, report.NotFound)
			assert.Equal(t, 1000, report.Count)
			assert.Equal(t, 1000, report.Reads+report.Writes)
			assert.Equal(t, tt.wantCapacity, report.Capacity)
			assert.Equal(t, uint64(1000), report.Footprint.Entries)
			assert.Zero(t, tracker.LiveEntries())

			var buf bytes.Buffer
			report.Print(&buf, 1000)
			assert.Contains(t, buf.String(), "All keys found")
		})
	}
}

func TestRunInvalidOptions(t *testing.T) {
	_, err := Run(Options{NumData: 0, Capacity: 1})
	require.Error(t, err)
	_, err = Run(Options{NumData: 10, ReadRatio: 120, Capacity: 1})
	require.Error(t, err)
	_, err = Run(Options{NumData: 10, Capacity: 0})
	require.ErrorIs(t, err, chainhash.ErrInvalidCapacity)
}
