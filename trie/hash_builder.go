// Copyright 2019 The go-ethereum Authors
// (original work)
// Copyright 2025 The seismic-trie Authors
// (modifications)
// This file is part of the seismic-trie library.
//
// The seismic-trie library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The seismic-trie library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the seismic-trie library. If not, see <http://www.gnu.org/licenses/>.

package trie

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// EmptyRoot is the root of a trie with no leaves, keccak256(rlp("")).
var EmptyRoot = common.HexToHash("56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

// HashBuilder assembles a hexary Merkle-Patricia trie out of leaves and
// derives the root hash over them. One instance serves a single root
// computation: add every leaf with AddLeaf, then call Root once.
type HashBuilder struct {
	root  node
	trace bool // Set to true when HashBuilder is required to print trace information for diagnostics
}

// NewHashBuilder creates a new HashBuilder
func NewHashBuilder(trace bool) *HashBuilder {
	return &HashBuilder{trace: trace}
}

// AddLeaf inserts a leaf at the given nibble path. Leaves may be added in any
// order; adding a leaf at an occupied path overwrites the previous value.
func (hb *HashBuilder) AddLeaf(path []byte, value []byte, isPrivate bool) {
	if hb.trace {
		fmt.Printf("LEAF %x len(value)=%d private=%t\n", path, len(value), isPrivate)
	}
	key := make([]byte, len(path)+1)
	copy(key, path)
	key[len(path)] = terminatorNibble
	hb.root = hb.insert(hb.root, key, valueNode{Data: bytes.Clone(value), Private: isPrivate})
}

func (hb *HashBuilder) insert(n node, key []byte, value valueNode) node {
	if len(key) == 0 {
		return value
	}
	switch n := n.(type) {
	case nil:
		return &shortNode{Key: key, Val: value}
	case *shortNode:
		matchlen := prefixLen(key, n.Key)
		if matchlen == len(n.Key) {
			n.Val = hb.insert(n.Val, key[matchlen:], value)
			return n
		}
		// The paths diverge within the segment, branch out. The terminator
		// nibble guarantees neither remainder is empty past the branch digit.
		branch := &fullNode{}
		branch.Children[n.Key[matchlen]] = shorten(n.Key[matchlen+1:], n.Val)
		branch.Children[key[matchlen]] = shorten(key[matchlen+1:], value)
		if matchlen == 0 {
			return branch
		}
		return &shortNode{Key: key[:matchlen], Val: branch}
	case *fullNode:
		n.Children[key[0]] = hb.insert(n.Children[key[0]], key[1:], value)
		return n
	}
	panic(fmt.Sprintf("trie: unexpected node type %T", n))
}

// shorten wraps a subtree into a shortNode unless its path segment is empty.
func shorten(key []byte, val node) node {
	if len(key) == 0 {
		return val
	}
	return &shortNode{Key: key, Val: val}
}

// Root finalizes the trie and returns its root hash. The builder is consumed
// by this call.
func (hb *HashBuilder) Root() common.Hash {
	if hb.root == nil {
		return EmptyRoot
	}
	h := newHasher()
	defer returnHasherToPool(h)
	root := h.hashRoot(hb.root)
	hb.root = nil
	if hb.trace {
		fmt.Printf("ROOT %x\n", root)
	}
	return root
}
