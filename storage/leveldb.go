package storage

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
)

type LevelDBHelper struct {
	db *leveldb.DB
}

// NewLevelDB opens or creates the database at dir.
func NewLevelDB(dir string) (KvStore, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", dir, err)
	}

	return &LevelDBHelper{db: db}, nil
}

func (h *LevelDBHelper) Close() error {
	return h.db.Close()
}

func (h *LevelDBHelper) Get(key []byte) ([]byte, error) {
	value, err := h.db.Get(key, nil)
	if errors.Is(err, lerrors.ErrNotFound) {
		return nil, ErrNotFound
	}

	return value, err
}

func (h *LevelDBHelper) Put(key, value []byte) error {
	return h.db.Put(key, value, nil)
}

func (h *LevelDBHelper) Delete(key []byte) error {
	return h.db.Delete(key, nil)
}
