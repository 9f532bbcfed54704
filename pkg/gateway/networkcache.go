/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"time"

	"github.com/hyperledger/fabric-gateway-go/pkg/util/concurrent/lazycache"
)

// networkBuilder opens the network for a channel name
type networkBuilder func(name string) (*Network, error)

// networkCache holds one network per channel name. An entry is published
// before the network is built, so concurrent callers share one build, and is
// removed again if the build fails.
type networkCache struct {
	cache *lazycache.Cache[*cachedNetwork]
}

// cachedNetwork lets the cache dispose of networks without exposing Close on
// Network itself
type cachedNetwork struct {
	network *Network
}

func (e *cachedNetwork) Close() {
	e.network.close()
	networksOpen.Dec()
}

func newNetworkCache(build networkBuilder) *networkCache {
	return &networkCache{
		cache: lazycache.New("Network_Cache", func(name string) (*cachedNetwork, error) {
			start := time.Now()
			network, err := build(name)
			networkBuildDuration.Observe(time.Since(start).Seconds())
			networkBuildsTotal.WithLabelValues(resultLabel(err)).Inc()
			if err != nil {
				return nil, err
			}
			networksOpen.Inc()
			return &cachedNetwork{network: network}, nil
		}),
	}
}

// get returns the network for the channel, building it if needed. ctx bounds
// the wait on a build started by another caller, not the build itself.
func (c *networkCache) get(ctx context.Context, name string) (*Network, error) {
	entry, err := c.cache.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return entry.network, nil
}

// close disposes every built network. Networks still being built are disposed
// when their build completes.
func (c *networkCache) close() {
	c.cache.Close()
}

func (c *networkCache) size() int {
	return c.cache.Len()
}
