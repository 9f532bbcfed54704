/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package configtree

// Merge layers override over base and returns the result as a new tree.
// Neither argument is modified. For each key in override:
//  - a nil value replaces the base value with nil (a tombstone, not a delete)
//  - a mapping merged into a base mapping is merged recursively, so base keys
//    not named by the override survive
//  - any other value replaces the base value wholesale
// Keys that only exist in base are copied unchanged.
func Merge(base, override Tree) Tree {
	result := Clone(base)
	if result == nil {
		result = Tree{}
	}
	mergeInto(result, override)
	return result
}

// mergeInto applies override to dst, which must be owned by the caller.
func mergeInto(dst Tree, override Tree) {
	for key, value := range override {
		if value == nil {
			dst[key] = nil
			continue
		}

		src, ok := AsTree(value)
		if !ok {
			dst[key] = value
			continue
		}

		existing, ok := AsTree(dst[key])
		if !ok {
			dst[key] = Clone(src)
			continue
		}

		// dst is a clone, so existing can be updated in place
		mergeInto(existing, src)
		dst[key] = existing
	}
}
