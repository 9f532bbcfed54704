/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabclient

import (
	"strings"
	"sync"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/configtree"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
)

// overrideBackend layers connection options over the backends of a
// connection profile. Keys are matched case insensitively.
type overrideBackend struct {
	backends []core.ConfigBackend

	mutex     sync.RWMutex
	overrides configtree.Tree
}

func newOverrideBackend(backends []core.ConfigBackend) *overrideBackend {
	return &overrideBackend{
		backends:  backends,
		overrides: configtree.Tree{},
	}
}

// merge folds options into the current overrides
func (b *overrideBackend) merge(options map[string]interface{}) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.overrides = configtree.Merge(b.overrides, lowerKeys(options))
}

// set replaces the value at a dotted path
func (b *overrideBackend) set(path string, value interface{}) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	overrides := configtree.Clone(b.overrides)
	configtree.Set(overrides, strings.ToLower(path), value)
	b.overrides = overrides
}

// Lookup returns the profile value merged with any override at key
func (b *overrideBackend) Lookup(key string) (interface{}, bool) {
	base, found := b.lookupProfile(key)

	b.mutex.RLock()
	override, overridden := configtree.Get(b.overrides, strings.ToLower(key))
	b.mutex.RUnlock()

	if !overridden {
		return base, found
	}
	if override == nil {
		return nil, false
	}

	overrideTree, ok := configtree.AsTree(override)
	if !ok {
		return override, true
	}
	baseTree, ok := configtree.AsTree(base)
	if !ok {
		return map[string]interface{}(configtree.Clone(overrideTree)), true
	}
	return map[string]interface{}(configtree.Merge(lowerKeys(baseTree), overrideTree)), true
}

func (b *overrideBackend) lookupProfile(key string) (interface{}, bool) {
	for _, backend := range b.backends {
		if value, ok := backend.Lookup(key); ok {
			return value, true
		}
	}
	return nil, false
}

// lowerKeys returns a copy of m with every mapping key lower cased
func lowerKeys(m map[string]interface{}) configtree.Tree {
	if m == nil {
		return nil
	}
	t := make(configtree.Tree, len(m))
	for k, v := range m {
		if sub, ok := configtree.AsTree(v); ok {
			t[strings.ToLower(k)] = lowerKeys(sub)
			continue
		}
		t[strings.ToLower(k)] = v
	}
	return t
}
