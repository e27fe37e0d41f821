package bench

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"
)

func keyOf(i int) string {
	return "key_" + strconv.Itoa(i)
}

func valueOf(i int) string {
	return "value_" + strconv.Itoa(i)
}

func generateSerializedKeys(n int) []string {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = keyOf(i + 1)
	}
	return keys
}

func generateShuffledKeys(n int, rnd *rand.Rand) []string {
	keys := generateSerializedKeys(n)
	rnd.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

func throughput(ops int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(ops) / elapsed.Seconds()
}

func printPhase(w io.Writer, name string, ops int, elapsed time.Duration) {
	fmt.Fprintf(w, "%s elapsed time: %.2f usec\n", name, float64(elapsed.Microseconds()))
	fmt.Fprintf(w, "%s throughput: %.2f ops/sec\n", name, throughput(ops, elapsed))
	fmt.Fprintf(w, "%s throughput: %.2f mops/sec\n", name, throughput(ops, elapsed)/1e6)
}
