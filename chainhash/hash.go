package chainhash

import (
	"hash/fnv"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// HashFunc returns the full 64-bit digest of a key. Bucket index is always
// digest mod capacity.
type HashFunc func(key string) uint64

// Djb2 is the default hash: acc = acc*33 + c starting at 5381, wrapping in
// uint64.
func Djb2(key string) uint64 {
	var hash uint64 = djb2Seed
	for i := 0; i < len(key); i++ {
		hash = (hash << 5) + hash + uint64(key[i])
	}
	return hash
}

func Xxhash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Standard is FNV-1a 64.
func Standard(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}

var hashFunctions = map[string]HashFunc{
	"djb2":   Djb2,
	"xxhash": Xxhash,
	"fnv":    Standard,
}

// ParseHashFunc looks up a registered hash function by name.
func ParseHashFunc(name string) (HashFunc, error) {
	if fn, ok := hashFunctions[name]; ok {
		return fn, nil
	}
	return nil, errors.Wrapf(ErrUnknownHashFunc, "%q, want one of %v", name, HashFuncNames())
}

// HashFuncNames returns the registered names, sorted.
func HashFuncNames() []string {
	names := make([]string, 0, len(hashFunctions))
	for name := range hashFunctions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hash maps key to a bucket index in [0, max) using djb2.
func Hash(key string, max int) int {
	return index(Djb2, key, max)
}

func index(fn HashFunc, key string, max int) int {
	return int(fn(key) % uint64(max))
}
