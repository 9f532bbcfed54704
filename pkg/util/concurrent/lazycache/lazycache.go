/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lazycache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/logging"
	"github.com/hyperledger/fabric-gateway-go/pkg/util/concurrent/futurevalue"
	"github.com/pkg/errors"
)

var logger = logging.NewLogger("fabgateway/util")

// ErrClosed is returned by Get once the cache has been closed
var ErrClosed = errors.New("cache is closed")

// EntryInitializer creates a cache value for the given key
type EntryInitializer[V any] func(key string) (V, error)

type closable interface {
	Close()
}

// Cache implements a lazy initializing cache. A cache entry is created
// the first time a value is accessed (via Get) by invoking the provided
// initializer. The entry is published before the initializer runs so that
// concurrent callers for the same key wait on the one initialization. If the
// initializer returns an error then the entry is removed.
type Cache[V any] struct {
	// name is useful for debugging
	name        string
	m           sync.Map
	size        int32
	initializer EntryInitializer[V]
	closed      int32
}

// New creates a new lazy cache with the given name
// (Note that the name is only used for debugging purpose)
func New[V any](name string, initializer EntryInitializer[V]) *Cache[V] {
	return &Cache[V]{
		name:        name,
		initializer: initializer,
	}
}

// Name returns the name of the cache (useful for debugging)
func (c *Cache[V]) Name() string {
	return c.name
}

// Len returns the number of entries, including those still initializing
func (c *Cache[V]) Len() int {
	return int(atomic.LoadInt32(&c.size))
}

// Get returns the value for the given key. If the key doesn't exist then the
// initializer is invoked to create the value, and the key is inserted. If the
// initializer returns an error then the key is removed from the cache.
// The context only bounds how long this caller waits for an initialization
// started by another caller.
func (c *Cache[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	if c.isClosed() {
		return zero, errors.Wrap(ErrClosed, c.name)
	}

	f, ok := c.m.Load(key)
	if ok {
		return c.wait(ctx, f.(*futurevalue.Value[V]))
	}

	// The key wasn't found. Attempt to add one.
	newFuture := futurevalue.New(func() (V, error) {
		return c.initializer(key)
	})

	f, loaded := c.m.LoadOrStore(key, newFuture)
	if loaded {
		// Another goroutine has added the key before us. Return the value.
		return c.wait(ctx, f.(*futurevalue.Value[V]))
	}
	atomic.AddInt32(&c.size, 1)

	// We added the key. It must be initialized.
	value, err := newFuture.Initialize()
	if err != nil {
		logger.Debugf("%s - Failed to initialize key [%s]: %s. Deleting key.", c.name, key, err)
		c.remove(key, newFuture)
		return zero, err
	}

	if c.isClosed() {
		// Close raced with the initializer and could not see the value
		if c.remove(key, newFuture) {
			logger.Debugf("%s - Cache closed while initializing key [%s]. Closing value.", c.name, key)
			c.closeValue(key, value)
		}
		return zero, errors.Wrap(ErrClosed, c.name)
	}

	return value, nil
}

// wait returns the value of an entry initialized by another caller. A value
// that became available after Close has been disposed of and is not returned.
func (c *Cache[V]) wait(ctx context.Context, f *futurevalue.Value[V]) (V, error) {
	value, err := f.Get(ctx)
	if err != nil {
		return value, err
	}
	if c.isClosed() {
		var zero V
		return zero, errors.Wrap(ErrClosed, c.name)
	}
	return value, nil
}

// Close does the following:
// - calls Close on all values that implement a Close() function
// - deletes all entries from the cache
// - prevents further calls to the cache
func (c *Cache[V]) Close() {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		// Already closed
		return
	}

	logger.Debugf("%s - Closing cache", c.name)

	c.m.Range(func(key interface{}, value interface{}) bool {
		f := value.(*futurevalue.Value[V])
		if !f.IsSet() {
			// the initializing goroutine disposes of it once it sees the closed flag
			logger.Debugf("%s - Reference for [%q] is not set", c.name, key)
			return true
		}
		// whoever removes the entry closes its value
		if !c.remove(key.(string), f) {
			return true
		}
		if v, err := f.Get(context.Background()); err == nil {
			c.closeValue(key.(string), v)
		}
		return true
	})
}

func (c *Cache[V]) isClosed() bool {
	return atomic.LoadInt32(&c.closed) == 1
}

func (c *Cache[V]) remove(key string, f *futurevalue.Value[V]) bool {
	if c.m.CompareAndDelete(key, f) {
		atomic.AddInt32(&c.size, -1)
		return true
	}
	return false
}

func (c *Cache[V]) closeValue(key string, value V) {
	if clos, ok := any(value).(closable); ok {
		logger.Debugf("%s - Invoking Close on value for key [%q].", c.name, key)
		clos.Close()
	}
}
