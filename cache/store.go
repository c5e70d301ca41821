// Package cache keeps timestamped JSON blobs under string keys and
// expires them after a fixed duration.
package cache

import (
	"errors"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// ErrNotFound is returned by Store.Get for a missing key.
var ErrNotFound = errors.New("cache: key not found")

// Store is a flat key/value space. Implementations are safe for
// concurrent use.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// NewMemoryStore returns a Store that lives only as long as the process.
func NewMemoryStore() Store {
	return &memStore{db: memdb.New(comparer.DefaultComparer, 0)}
}

type memStore struct {
	mu sync.Mutex // guards db
	db *memdb.DB
}

func (s *memStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, err := s.db.Get([]byte(key))
	if err == memdb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// memdb hands out its own buffer.
	return append([]byte(nil), val...), nil
}

func (s *memStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Put([]byte(key), value)
}

func (s *memStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Delete([]byte(key)); err != nil && err != memdb.ErrNotFound {
		return err
	}
	return nil
}

func (s *memStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db.Reset()
	return nil
}

// NewLevelDBStore opens (creating if needed) a leveldb database at path.
func NewLevelDBStore(path string) (Store, error) {
	opts := &opt.Options{
		Filter: filter.NewBloomFilter(10),
	}
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, err
	}
	return &levelStore{
		db: db,
		// Cached feeds can always be fetched again.
		writeOpts: &opt.WriteOptions{Sync: false},
	}, nil
}

type levelStore struct {
	db        *leveldb.DB
	writeOpts *opt.WriteOptions
}

func (s *levelStore) Get(key string) ([]byte, error) {
	val, err := s.db.Get([]byte(key), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	return val, err
}

func (s *levelStore) Put(key string, value []byte) error {
	return s.db.Put([]byte(key), value, s.writeOpts)
}

func (s *levelStore) Delete(key string) error {
	return s.db.Delete([]byte(key), s.writeOpts)
}

func (s *levelStore) Close() error {
	return s.db.Close()
}
