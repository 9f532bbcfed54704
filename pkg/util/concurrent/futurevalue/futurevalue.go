/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futurevalue

import (
	"context"
	"sync/atomic"
)

// Initializer initializes the value
type Initializer[T any] func() (T, error)

// valueHolder holds the actual value
type valueHolder[T any] struct {
	value T
	err   error
}

// Value implements a Future Value in which a reference is initialized once
// (and only once) using the Initialize function. Only one Go routine can call
// Initialize whereas multiple Go routines may invoke Get, and will wait
// until the reference has been initialized.
// Regardless of whether Initialize returns success or error,
// the value cannot be initialized again.
type Value[T any] struct {
	ref         atomic.Pointer[valueHolder[T]]
	done        chan struct{}
	initializer Initializer[T]
}

// New returns a new future value
func New[T any](initializer Initializer[T]) *Value[T] {
	return &Value[T]{
		initializer: initializer,
		done:        make(chan struct{}),
	}
}

// Initialize initializes the future value.
// This function must be called only once.
func (f *Value[T]) Initialize() (T, error) {
	value, err := f.initializer()
	f.ref.Store(&valueHolder[T]{value: value, err: err})
	close(f.done)

	return value, err
}

// Get returns the value and/or error that occurred during initialization,
// waiting for Initialize to complete if necessary. If ctx is done first,
// the context error is returned and the value remains pending.
func (f *Value[T]) Get(ctx context.Context) (T, error) {
	if holder := f.ref.Load(); holder != nil {
		return holder.value, holder.err
	}

	select {
	case <-f.done:
		holder := f.ref.Load()
		return holder.value, holder.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// IsSet returns true if the value has been set, otherwise false is returned
func (f *Value[T]) IsSet() bool {
	return f.ref.Load() != nil
}
