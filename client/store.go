package client

import (
	"errors"

	"github.com/cockroachdb/pebble"
)

// Store keeps the last rendered wire JSON per account address, so callers
// can show the last known state of an account while the node is unreachable.
type Store struct {
	db *pebble.DB
}

var ErrNotFound = errors.New("not found")

func NewStore(path string) (*Store, error) {
	opts := &pebble.Options{}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(address string) ([]byte, error) {
	value, closer, err := s.db.Get([]byte(address))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	v := append([]byte(nil), value...)
	return v, nil
}

func (s *Store) Set(address string, value []byte) error {
	return s.db.Set([]byte(address), value, pebble.Sync)
}
