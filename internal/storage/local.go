package storage

import "context"

// LocalStore is the no-op Store: converted assets stay where the
// converter wrote them.
type LocalStore struct{}

// NewLocalStore creates a LocalStore.
func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// Publish implements Store. The artifact is already at its final path,
// so there is nothing to do and no URL to return.
func (s *LocalStore) Publish(_ context.Context, _ string) (string, error) {
	return "", nil
}
