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
	"encoding/binary"
	"fmt"
	"hash"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

const (
	emptyStringCode = 0x80

	// privateLeafMarker is committed as an extra single-byte RLP element at
	// the end of a private leaf's list. Public leaves keep the canonical
	// two-element form, so an all-public trie hashes exactly like an
	// Ethereum MPT, while a private entry can never collide with a public
	// one carrying the same key and value.
	privateLeafMarker = 0x01
)

// keccakState wraps sha3.state. In addition to the usual hash methods, it
// also supports Read to get a variable amount of data from the hash state.
// Read is faster than Sum because it doesn't copy the internal state.
type keccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

type hasher struct {
	sha keccakState
}

var hashersPool = sync.Pool{
	New: func() any {
		return &hasher{sha: sha3.NewLegacyKeccak256().(keccakState)}
	},
}

func newHasher() *hasher {
	return hashersPool.Get().(*hasher)
}

func returnHasherToPool(h *hasher) {
	hashersPool.Put(h)
}

// hashRoot returns the keccak hash of the node's consensus RLP. The root of
// a trie is always hashed, even when its encoding is shorter than a hash.
func (h *hasher) hashRoot(n node) common.Hash {
	enc := h.encodeNode(n)
	h.sha.Reset()
	h.sha.Write(enc)
	var root common.Hash
	h.sha.Read(root[:])
	return root
}

// encodeNode returns the consensus RLP of n, with child subtrees collapsed
// into their references.
func (h *hasher) encodeNode(n node) []byte {
	switch n := n.(type) {
	case *shortNode:
		body := appendRlpString(nil, hexToCompact(n.Key))
		if v, ok := n.Val.(valueNode); ok {
			body = appendValue(body, v)
		} else {
			body = append(body, h.encodeRef(n.Val)...)
		}
		return wrapRlpList(body)
	case *fullNode:
		var body []byte
		for _, child := range n.Children[:16] {
			if child == nil {
				body = append(body, emptyStringCode)
			} else {
				body = append(body, h.encodeRef(child)...)
			}
		}
		if v, ok := n.Children[16].(valueNode); ok {
			body = appendValue(body, v)
		} else {
			body = append(body, emptyStringCode)
		}
		return wrapRlpList(body)
	}
	panic(fmt.Sprintf("trie: unexpected node type %T", n))
}

// encodeRef returns the RLP item that represents n inside its parent: the
// node's own encoding when shorter than a hash, the RLP string of its keccak
// hash otherwise.
func (h *hasher) encodeRef(n node) []byte {
	enc := h.encodeNode(n)
	if len(enc) < common.HashLength {
		return enc
	}
	h.sha.Reset()
	h.sha.Write(enc)
	ref := make([]byte, common.HashLength+1)
	ref[0] = emptyStringCode + common.HashLength
	h.sha.Read(ref[1:])
	return ref
}

func appendValue(dst []byte, v valueNode) []byte {
	dst = appendRlpString(dst, v.Data)
	if v.Private {
		dst = append(dst, privateLeafMarker)
	}
	return dst
}

func appendRlpString(dst, s []byte) []byte {
	if len(s) == 1 && s[0] < emptyStringCode {
		return append(dst, s[0])
	}
	if len(s) < 56 {
		dst = append(dst, emptyStringCode+byte(len(s)))
	} else {
		size := putUintBE(len(s))
		dst = append(dst, 0xb7+byte(len(size)))
		dst = append(dst, size...)
	}
	return append(dst, s...)
}

// wrapRlpList prepends the RLP list prefix for a payload of len(body) bytes.
func wrapRlpList(body []byte) []byte {
	var head []byte
	if len(body) < 56 {
		head = []byte{0xc0 + byte(len(body))}
	} else {
		size := putUintBE(len(body))
		head = append([]byte{0xf7 + byte(len(size))}, size...)
	}
	return append(head, body...)
}

// putUintBE returns the minimal big-endian representation of v.
func putUintBE(v int) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	i := 0
	for i < 7 && b[i] == 0 {
		i++
	}
	return b[i:]
}
