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

package trie

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// EmptyCodeHash is keccak256 of no code.
var EmptyCodeHash = crypto.Keccak256Hash(nil)

// TrieAccount is the canonical account record committed to the state trie,
// RLP encoded as [nonce, balance, storageRoot, codeHash].
type TrieAccount struct {
	Nonce       uint64
	Balance     *uint256.Int
	StorageRoot common.Hash
	CodeHash    common.Hash
}

// NewTrieAccount returns the record of an account with no storage and no code.
func NewTrieAccount(nonce uint64, balance *uint256.Int) TrieAccount {
	return TrieAccount{
		Nonce:       nonce,
		Balance:     balance,
		StorageRoot: EmptyRoot,
		CodeHash:    EmptyCodeHash,
	}
}

// TrieAccount lets the canonical record stand in wherever an account
// representation is expected.
func (a TrieAccount) TrieAccount() TrieAccount { return a }

// Account is any account representation that can be reduced to the canonical
// record before insertion into the state trie.
type Account interface {
	TrieAccount() TrieAccount
}
