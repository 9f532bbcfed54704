/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package configtree holds the nested option trees used to configure a gateway
// and the merge rules applied when caller options are layered over defaults.
//
// A Tree maps string keys to scalars, functions, objects or nested trees.
// A key explicitly mapped to nil is a tombstone and is kept distinct from an
// absent key.
package configtree

import (
	"strings"

	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"
)

// Tree is a nested configuration mapping.
type Tree map[string]interface{}

// AsTree returns v as a Tree if v is a plain mapping.
//  Tree, map[string]interface{} and map[interface{}]interface{} (as produced
//  by YAML decoders) are mappings. Every other value, including functions,
//  slices, pointers and structs, is not.
func AsTree(v interface{}) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]interface{}:
		return Tree(m), true
	case map[interface{}]interface{}:
		sm, err := cast.ToStringMapE(m)
		if err != nil {
			return nil, false
		}
		return Tree(sm), true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of the mapping structure of t.
// Leaf values are shared, not copied.
func Clone(t Tree) Tree {
	if t == nil {
		return nil
	}
	c := make(Tree, len(t))
	for k, v := range t {
		if sub, ok := AsTree(v); ok {
			c[k] = Clone(sub)
			continue
		}
		c[k] = v
	}
	return c
}

// Get returns the value at the dot separated path.
// The boolean is false when any element of the path is absent. A tombstoned
// value is present and returned as nil.
func Get(t Tree, path string) (interface{}, bool) {
	var current interface{} = t
	for _, key := range strings.Split(path, ".") {
		m, ok := AsTree(current)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set stores value at the dot separated path, creating intermediate trees.
// A non-mapping value on the way is replaced by a new tree.
func Set(t Tree, path string, value interface{}) {
	keys := strings.Split(path, ".")
	current := t
	for _, key := range keys[:len(keys)-1] {
		next, ok := AsTree(current[key])
		if !ok {
			next = Tree{}
		}
		current[key] = next
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// FromYAML decodes a YAML document into a Tree.
// Explicit nulls are preserved as tombstones.
func FromYAML(data []byte) (Tree, error) {
	raw := map[interface{}]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return normalize(raw), nil
}

func normalize(m map[interface{}]interface{}) Tree {
	t := make(Tree, len(m))
	for k, v := range m {
		key := cast.ToString(k)
		switch val := v.(type) {
		case map[interface{}]interface{}:
			t[key] = normalize(val)
		default:
			t[key] = val
		}
	}
	return t
}
