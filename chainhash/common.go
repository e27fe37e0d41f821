package chainhash

import (
	"fmt"

	"github.com/pkg/errors"
)

// InsertResult 描述一次 Insert 的结果
type InsertResult int

const (
	Inserted    InsertResult = iota // 新建 entry
	Overwritten                     // key 已存在，value 被覆盖
)

var insertResultNames = map[InsertResult]string{
	Inserted:    "INSERTED",
	Overwritten: "OVERWRITTEN",
}

func (r InsertResult) String() string {
	if name, exists := insertResultNames[r]; exists {
		return name
	}
	return fmt.Sprintf("UNKNOWN_RESULT(%d)", int(r))
}

var (
	// ErrInvalidCapacity is returned by New when capacity < 1.
	ErrInvalidCapacity = errors.New("invalid hash table capacity")
	// ErrUnknownHashFunc is returned by ParseHashFunc for unregistered names.
	ErrUnknownHashFunc = errors.New("unknown hash function")
	// ErrTableDestroyed is the panic value for any use of a table after
	// Destroy or Resize.
	ErrTableDestroyed = errors.New("hash table used after destroy")
)

const (
	djb2Seed = 5381
	// MinCapacity is the smallest bucket count New accepts.
	MinCapacity = 1
)
