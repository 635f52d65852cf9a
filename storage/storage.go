package storage

import "fmt"

var (
	ErrNotFound = fmt.Errorf("not found")
	ErrCorrupt  = fmt.Errorf("corrupt counter")
)

// KvStore is the byte-oriented store lookup statistics are persisted in.
type KvStore interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Close() error
}

// Counts holds how often a name was resolved successfully or not.
type Counts struct {
	Hits   uint64
	Misses uint64
}
