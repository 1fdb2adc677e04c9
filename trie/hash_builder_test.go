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
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// The expected values below are assembled from first principles: leaf and
// branch RLP is composed with the plain helpers at the bottom of this file
// and hashed with keccak, independently of the hasher under test.

func TestEmptyRootConstant(t *testing.T) {
	require.Equal(t, crypto.Keccak256Hash([]byte{0x80}), EmptyRoot)
	require.Equal(t, EmptyRoot, NewHashBuilder(false).Root())
}

func TestSingleLeafRoot(t *testing.T) {
	key := common.Hash{31: 0x01}

	hb := NewHashBuilder(false)
	hb.AddLeaf(UnpackNibbles(key[:]), []byte{0x2a}, false)

	// Even-length terminated path: compact encoding is 0x20 followed by the
	// packed nibbles, which are the key bytes themselves.
	compact := append([]byte{0x20}, key[:]...)
	enc := rlpList(rlpStr(compact), rlpStr([]byte{0x2a}))
	require.Equal(t, crypto.Keccak256Hash(enc), hb.Root())
}

func TestTwoLeafBranchRoot(t *testing.T) {
	k1 := common.Hash{}        // first nibble 0
	k2 := common.Hash{0: 0x80} // first nibble 8

	hb := NewHashBuilder(false)
	hb.AddLeaf(UnpackNibbles(k1[:]), []byte{0x01}, false)
	hb.AddLeaf(UnpackNibbles(k2[:]), []byte{0x02}, false)

	// Both remainders after the branch digit are 63 zero nibbles: odd-length
	// terminated compact encoding 0x30 followed by 31 zero bytes.
	compact := make([]byte, 32)
	compact[0] = 0x30
	leaf := func(val byte) []byte {
		return rlpList(rlpStr(compact), rlpStr([]byte{val}))
	}
	ref := func(enc []byte) []byte {
		return rlpStr(crypto.Keccak256(enc))
	}
	items := make([][]byte, 17)
	for i := range items {
		items[i] = rlpStr(nil)
	}
	items[0] = ref(leaf(0x01))
	items[8] = ref(leaf(0x02))
	require.Equal(t, crypto.Keccak256Hash(rlpList(items...)), hb.Root())
}

func TestLeafOverwrite(t *testing.T) {
	key := common.Hash{31: 0x07}

	hb1 := NewHashBuilder(false)
	hb1.AddLeaf(UnpackNibbles(key[:]), []byte{0x01}, false)
	hb1.AddLeaf(UnpackNibbles(key[:]), []byte{0x02}, false)

	hb2 := NewHashBuilder(false)
	hb2.AddLeaf(UnpackNibbles(key[:]), []byte{0x02}, false)

	require.Equal(t, hb2.Root(), hb1.Root())
}

func TestPrivateLeafRoot(t *testing.T) {
	key := common.Hash{31: 0x01}

	private := NewHashBuilder(false)
	private.AddLeaf(UnpackNibbles(key[:]), []byte{0x2a}, true)
	public := NewHashBuilder(false)
	public.AddLeaf(UnpackNibbles(key[:]), []byte{0x2a}, false)

	compact := append([]byte{0x20}, key[:]...)
	enc := rlpList(rlpStr(compact), rlpStr([]byte{0x2a}), []byte{0x01})
	privateRoot := private.Root()
	require.Equal(t, crypto.Keccak256Hash(enc), privateRoot)
	require.NotEqual(t, public.Root(), privateRoot)
}

func TestInsertionOrderIndependent(t *testing.T) {
	var keys []common.Hash
	for i := byte(0); i < 32; i++ {
		keys = append(keys, crypto.Keccak256Hash([]byte{i}))
	}
	build := func(order []int) common.Hash {
		hb := NewHashBuilder(false)
		for _, i := range order {
			hb.AddLeaf(UnpackNibbles(keys[i][:]), []byte{byte(i + 1)}, false)
		}
		return hb.Root()
	}
	forward := make([]int, len(keys))
	reverse := make([]int, len(keys))
	for i := range keys {
		forward[i] = i
		reverse[i] = len(keys) - 1 - i
	}
	require.Equal(t, build(forward), build(reverse))
}

// rlpStr encodes s as an RLP byte string. Test sizes stay below 64 KiB.
func rlpStr(s []byte) []byte {
	if len(s) == 1 && s[0] <= 0x7f {
		return []byte{s[0]}
	}
	if len(s) <= 55 {
		return append([]byte{0x80 + byte(len(s))}, s...)
	}
	if len(s) <= 0xff {
		return append([]byte{0xb8, byte(len(s))}, s...)
	}
	return append([]byte{0xb9, byte(len(s) >> 8), byte(len(s))}, s...)
}

// rlpList encodes the concatenation of already-encoded items as an RLP list.
func rlpList(items ...[]byte) []byte {
	var body []byte
	for _, item := range items {
		body = append(body, item...)
	}
	if len(body) <= 55 {
		return append([]byte{0xc0 + byte(len(body))}, body...)
	}
	if len(body) <= 0xff {
		return append([]byte{0xf8, byte(len(body))}, body...)
	}
	return append([]byte{0xf9, byte(len(body) >> 8), byte(len(body))}, body...)
}
