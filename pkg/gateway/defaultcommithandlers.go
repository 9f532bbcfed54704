/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// CommitHandlerFactory names the strategy used to wait for commit events
// after a transaction is submitted. The client applies the strategy.
type CommitHandlerFactory interface {
	Name() string
}

// QueryHandlerFactory creates the query handler of a network
type QueryHandlerFactory interface {
	Name() string
	Create(orgPeers []string) QueryHandler
}

// QueryHandler picks the peers an evaluated transaction is sent to
type QueryHandler interface {
	// Targets returns the peers for the next query. Nil leaves the choice to
	// the client.
	Targets() []string
}

type commitHandlerList struct {
	None       CommitHandlerFactory
	OrgAll     CommitHandlerFactory
	OrgAny     CommitHandlerFactory
	NetworkAll CommitHandlerFactory
	NetworkAny CommitHandlerFactory
}

// DefaultCommitHandlers provides the built-in commit handler implementations.
var DefaultCommitHandlers = &commitHandlerList{
	None:       nil,
	OrgAll:     &commitHandlerFactory{"MSPID_SCOPE_ALLFORTX"},
	OrgAny:     &commitHandlerFactory{"MSPID_SCOPE_ANYFORTX"},
	NetworkAll: &commitHandlerFactory{"NETWORK_SCOPE_ALLFORTX"},
	NetworkAny: &commitHandlerFactory{"NETWORK_SCOPE_ANYFORTX"},
}

type queryHandlerList struct {
	OrgSingle     QueryHandlerFactory
	OrgRoundRobin QueryHandlerFactory
}

// DefaultQueryHandlers provides the built-in query handler implementations.
var DefaultQueryHandlers = &queryHandlerList{
	OrgSingle:     &singleQueryHandlerFactory{},
	OrgRoundRobin: &roundRobinQueryHandlerFactory{},
}

type commitHandlerFactory struct {
	name string
}

func (f *commitHandlerFactory) Name() string {
	return f.name
}

// CommitHandlerByName returns the built-in commit handler with the given name
func CommitHandlerByName(name string) (CommitHandlerFactory, error) {
	for _, f := range []CommitHandlerFactory{
		DefaultCommitHandlers.OrgAll,
		DefaultCommitHandlers.OrgAny,
		DefaultCommitHandlers.NetworkAll,
		DefaultCommitHandlers.NetworkAny,
	} {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, errors.Errorf("unknown commit handler strategy: %s", name)
}

// QueryHandlerByName returns the built-in query handler with the given name
func QueryHandlerByName(name string) (QueryHandlerFactory, error) {
	for _, f := range []QueryHandlerFactory{
		DefaultQueryHandlers.OrgSingle,
		DefaultQueryHandlers.OrgRoundRobin,
	} {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, errors.Errorf("unknown query handler strategy: %s", name)
}

type singleQueryHandlerFactory struct{}

func (f *singleQueryHandlerFactory) Name() string {
	return "MSPID_SCOPE_SINGLE"
}

func (f *singleQueryHandlerFactory) Create(orgPeers []string) QueryHandler {
	return &singleQueryHandler{peers: orgPeers}
}

// singleQueryHandler sends every query to the first peer of the organization
type singleQueryHandler struct {
	peers []string
}

func (h *singleQueryHandler) Targets() []string {
	if len(h.peers) == 0 {
		return nil
	}
	return h.peers[:1]
}

type roundRobinQueryHandlerFactory struct{}

func (f *roundRobinQueryHandlerFactory) Name() string {
	return "MSPID_SCOPE_ROUND_ROBIN"
}

func (f *roundRobinQueryHandlerFactory) Create(orgPeers []string) QueryHandler {
	return &roundRobinQueryHandler{peers: orgPeers}
}

// roundRobinQueryHandler rotates queries over the peers of the organization
type roundRobinQueryHandler struct {
	peers []string
	next  uint32
}

func (h *roundRobinQueryHandler) Targets() []string {
	if len(h.peers) == 0 {
		return nil
	}
	i := (atomic.AddUint32(&h.next, 1) - 1) % uint32(len(h.peers))
	return h.peers[i : i+1]
}
