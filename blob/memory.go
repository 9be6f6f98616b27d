// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package blob

import (
	"context"
	"errors"
	"sync"
)

// ErrPutFailed is returned by a MemStore forced into failure mode.
var ErrPutFailed = errors.New("object store write failed")

// Object is a stored blob with its content type.
type Object struct {
	Data        []byte
	ContentType string
}

// MemStore keeps objects in a map. It backs local development when no
// storage endpoint is configured, and tests, where failure mode exercises
// the inline fallback path.
type MemStore struct {
	mu      sync.Mutex
	objects map[string]Object
	fail    bool
}

func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string]Object)}
}

// SetFail makes every subsequent Put return ErrPutFailed.
func (s *MemStore) SetFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func (s *MemStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return ErrPutFailed
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = Object{Data: buf, ContentType: contentType}
	return nil
}

// Get returns a stored object. Test helper.
func (s *MemStore) Get(key string) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	return obj, ok
}

// Len reports the number of stored objects. Test helper.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
