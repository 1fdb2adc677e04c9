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

import "github.com/holiman/uint256"

// StorageValue is one contract storage word together with its privacy flag.
// Both concrete shapes reduce to the same (word, flag) pair at insertion.
type StorageValue interface {
	Value() *uint256.Int
	IsPrivate() bool
}

// PlainValue is a bare storage word. It is always public.
type PlainValue uint256.Int

func (v *PlainValue) Value() *uint256.Int { return (*uint256.Int)(v) }
func (v *PlainValue) IsPrivate() bool     { return false }

// FlaggedValue is a storage word with an explicit privacy flag.
type FlaggedValue struct {
	Word    uint256.Int
	Private bool
}

func (v *FlaggedValue) Value() *uint256.Int { return &v.Word }
func (v *FlaggedValue) IsPrivate() bool     { return v.Private }
