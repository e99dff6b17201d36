package storage

import (
	"context"
	"encoding/json"
	"log"
	"reflect"
	"sync"
)

// Cell is a typed view over a single store key. The current value is
// mirrored in memory so reads never touch the backend; every update writes
// through. Setting a nil value (typed nil pointer, slice or map) deletes
// the key instead of storing "null".
type Cell[T any] struct {
	store  Store
	key    string
	logger *log.Logger

	mu    sync.Mutex
	value T
}

// NewCell loads the current value for key. A missing key yields initial;
// a value that fails to decode is logged and also yields initial.
func NewCell[T any](ctx context.Context, store Store, key string, initial T, logger *log.Logger) *Cell[T] {
	c := &Cell[T]{store: store, key: key, logger: logger, value: initial}

	raw, err := store.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			logger.Printf("load %s: %v", key, err)
		}
		return c
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Printf("decode %s: %v", key, err)
		return c
	}
	c.value = v
	return c
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Cell[T]) Set(ctx context.Context, v T) {
	c.Update(ctx, func(T) T { return v })
}

// Update applies fn to the current value and persists the result. The
// in-memory value is updated even when the durable write fails, so callers
// observe the same behavior with or without a working backend.
func (c *Cell[T]) Update(ctx context.Context, fn func(prev T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := fn(c.value)
	c.value = next

	if isNil(next) {
		if err := c.store.Delete(ctx, c.key); err != nil {
			c.logger.Printf("delete %s: %v", c.key, err)
		}
		return
	}

	raw, err := json.Marshal(next)
	if err != nil {
		c.logger.Printf("encode %s: %v", c.key, err)
		return
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		c.logger.Printf("save %s: %v", c.key, err)
	}
}

// isNil reports whether v is nil, including a typed nil boxed in an
// interface (which does not compare equal to untyped nil).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
