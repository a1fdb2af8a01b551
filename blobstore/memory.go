package blobstore

import (
	"bytes"
	"context"
)

// MemoryStore is an in-memory Store, mainly useful for tests.
type MemoryStore struct {
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Put stores data under name, replacing any previous contents.
func (s *MemoryStore) Put(name string, data []byte) {
	s.blobs[name] = append([]byte(nil), data...)
}

// Open opens a blob for reading.
func (s *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	data, ok := s.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &memoryBlob{Reader: bytes.NewReader(data)}, nil
}

type memoryBlob struct {
	*bytes.Reader
}

func (b *memoryBlob) Close() error {
	return nil
}

func (b *memoryBlob) Size() int64 {
	return b.Reader.Size()
}
