package storage

import (
	"encoding/binary"
)

const (
	hitPrefix  = "h"
	missPrefix = "m"
)

func hitKey(name string) []byte {
	return append([]byte(hitPrefix), name...)
}

func missKey(name string) []byte {
	return append([]byte(missPrefix), name...)
}

func encodeCounter(n uint64) []byte {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, n)

	return value
}

func decodeCounter(value []byte) (uint64, error) {
	if len(value) != 8 {
		return 0, ErrCorrupt
	}

	return binary.BigEndian.Uint64(value), nil
}
