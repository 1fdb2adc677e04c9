// Copyright 2025 The seismic-trie Authors
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

// Package trie computes deterministic Merkle-Patricia trie root hashes over
// ordered or keyed collections: transaction/receipt style lists, contract
// storage and global account state. Storage leaves can carry a privacy flag;
// all-public tries hash identically to the Ethereum MPT convention.
//
// Every root function builds one trie from a complete in-memory snapshot and
// discards it. Nothing persists across calls and no proofs are generated.
package trie

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// AdjustIndexForRLP remaps the logical position of an item in an ordered
// collection onto the index that keys its trie leaf. Indices below 0x80 RLP
// encode to a single byte, so walking positions in this remapped order
// (1..0x7f, then 0, then 0x80..) presents keys in ascending byte order.
func AdjustIndexForRLP(i, length int) int {
	switch {
	case i > 0x7f:
		return i
	case i == 0x7f || i+1 == length:
		return 0
	default:
		return i + 1
	}
}

// OrderedTrieRoot computes the trie root of a collection of RLP encodable
// items keyed by their logical position. Privacy is not supported for
// ordered collections; every leaf is public. Used for things like receipt
// roots rather than state roots.
func OrderedTrieRoot[T any](items []T) common.Hash {
	return OrderedTrieRootWithEncoder(items, func(item T, buf *bytes.Buffer) {
		if err := rlp.Encode(buf, item); err != nil {
			panic(fmt.Sprintf("trie: unencodable ordered item: %v", err))
		}
	})
}

// OrderedTrieRootWithEncoder computes the trie root of a collection of items
// with a custom encoder. The buffer handed to encode is reset before every
// call.
func OrderedTrieRootWithEncoder[T any](items []T, encode func(item T, buf *bytes.Buffer)) common.Hash {
	if len(items) == 0 {
		return EmptyRoot
	}
	hb := NewHashBuilder(false)
	var indexBuf []byte
	var valueBuf bytes.Buffer
	for i := 0; i < len(items); i++ {
		index := AdjustIndexForRLP(i, len(items))
		indexBuf = rlp.AppendUint64(indexBuf[:0], uint64(index))
		valueBuf.Reset()
		encode(items[index], &valueBuf)
		hb.AddLeaf(UnpackNibbles(indexBuf), valueBuf.Bytes(), false)
	}
	return hb.Root()
}

// DerivableList is the list shape go-ethereum uses for transaction and
// receipt hashing.
type DerivableList interface {
	Len() int
	EncodeIndex(i int, buf *bytes.Buffer)
}

// DeriveSha computes the ordered trie root of list.
func DeriveSha(list DerivableList) common.Hash {
	indexes := make([]int, list.Len())
	for i := range indexes {
		indexes[i] = i
	}
	return OrderedTrieRootWithEncoder(indexes, func(i int, buf *bytes.Buffer) {
		list.EncodeIndex(i, buf)
	})
}

// StorageEntry is one slot of contract storage. Slot holds the hashed
// 32-byte trie key, or the raw slot identifier for the Unhashed tier.
type StorageEntry[V StorageValue] struct {
	Slot common.Hash
	Val  V
}

// StorageRoot calculates the root hash of an account storage trie. The
// entries must be in strictly ascending slot order; StorageRoot panics when
// the order is violated. Callers that cannot guarantee it use
// StorageRootUnsorted.
func StorageRoot[V StorageValue](storage []StorageEntry[V]) common.Hash {
	hb := NewHashBuilder(false)
	var prev common.Hash
	for i, entry := range storage {
		if i > 0 && bytes.Compare(prev[:], entry.Slot[:]) >= 0 {
			panic(fmt.Sprintf("trie: storage slots out of order: %x after %x", entry.Slot, prev))
		}
		prev = entry.Slot
		enc, _ := rlp.EncodeToBytes(entry.Val.Value())
		hb.AddLeaf(UnpackNibbles(entry.Slot[:]), enc, entry.Val.IsPrivate())
	}
	return hb.Root()
}

// StorageRootUnsorted sorts the entries by slot and calculates the root hash
// of the storage trie. The sort compares slots only; if duplicate slots carry
// different values the retained value is unspecified, deduplicate upstream
// when that matters.
func StorageRootUnsorted[V StorageValue](storage []StorageEntry[V]) common.Hash {
	sorted := slices.Clone(storage)
	slices.SortFunc(sorted, func(a, b StorageEntry[V]) int {
		return bytes.Compare(a.Slot[:], b.Slot[:])
	})
	return StorageRoot(sorted)
}

// StorageRootUnhashed hashes the raw slot identifiers into trie keys, sorts
// and calculates the root hash of the storage trie.
func StorageRootUnhashed[V StorageValue](storage []StorageEntry[V]) common.Hash {
	hashed := make([]StorageEntry[V], len(storage))
	for i, entry := range storage {
		hashed[i] = StorageEntry[V]{Slot: crypto.Keccak256Hash(entry.Slot[:]), Val: entry.Val}
	}
	return StorageRootUnsorted(hashed)
}

// StateEntry is one account of global state keyed by its hashed address.
type StateEntry[A Account] struct {
	Key     common.Hash
	Account A
}

// AccountEntry is one account of global state keyed by its raw address.
type AccountEntry[A Account] struct {
	Address common.Address
	Account A
}

// StateRoot calculates the root hash of the state trie. The entries must be
// in strictly ascending key order; StateRoot panics when the order is
// violated. Account leaves are always public, unlike storage entries.
func StateRoot[A Account](state []StateEntry[A]) common.Hash {
	hb := NewHashBuilder(false)
	var accountBuf bytes.Buffer
	var prev common.Hash
	for i, entry := range state {
		if i > 0 && bytes.Compare(prev[:], entry.Key[:]) >= 0 {
			panic(fmt.Sprintf("trie: state keys out of order: %x after %x", entry.Key, prev))
		}
		prev = entry.Key
		accountBuf.Reset()
		if err := rlp.Encode(&accountBuf, entry.Account.TrieAccount()); err != nil {
			panic(fmt.Sprintf("trie: unencodable account: %v", err))
		}
		hb.AddLeaf(UnpackNibbles(entry.Key[:]), accountBuf.Bytes(), false)
	}
	return hb.Root()
}

// StateRootUnsorted sorts the hashed account keys and calculates the root
// hash of the state trie. Duplicate keys follow the same rule as
// StorageRootUnsorted.
func StateRootUnsorted[A Account](state []StateEntry[A]) common.Hash {
	sorted := slices.Clone(state)
	slices.SortFunc(sorted, func(a, b StateEntry[A]) int {
		return bytes.Compare(a.Key[:], b.Key[:])
	})
	return StateRoot(sorted)
}

// StateRootUnhashed hashes the account addresses into trie keys, sorts and
// calculates the root hash of the state trie.
func StateRootUnhashed[A Account](state []AccountEntry[A]) common.Hash {
	hashed := make([]StateEntry[A], len(state))
	for i, entry := range state {
		hashed[i] = StateEntry[A]{Key: crypto.Keccak256Hash(entry.Address[:]), Account: entry.Account}
	}
	return StateRootUnsorted(hashed)
}

// StateRootFromMap calculates the state root of an account set held in a map
// without disturbing it, for callers that keep state keyed by address (for
// example a genesis allocation).
func StateRootFromMap[A Account](state map[common.Address]A) common.Hash {
	entries := make([]StateEntry[A], 0, len(state))
	for addr, account := range state {
		entries = append(entries, StateEntry[A]{Key: crypto.Keccak256Hash(addr[:]), Account: account})
	}
	return StateRootUnsorted(entries)
}
