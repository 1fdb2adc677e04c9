// Copyright 2014 The go-ethereum Authors
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

type node interface{}

type (
	// fullNode is a branch with one child slot per nibble. The 17th slot
	// holds the value of a key that terminates at this node.
	fullNode struct {
		Children [17]node
	}
	// shortNode carries a shared path segment in HEX encoding. A leaf keeps
	// the terminator nibble at the end of its Key, an extension does not.
	shortNode struct {
		Key []byte
		Val node
	}
	valueNode struct {
		Data    []byte
		Private bool
	}
)
