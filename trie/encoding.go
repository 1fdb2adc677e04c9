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

// Trie keys are processed in three encodings:
//
// KEYBYTES encoding contains the actual key and nothing else. It is the
// encoding callers hand to UnpackNibbles.
//
// HEX encoding contains one byte for each nibble of the key, optionally
// followed by the terminator 0x10 marking that the key carries a value.
// Nodes hold their path segments in this encoding.
//
// COMPACT encoding ("hex prefix encoding" in the Yellow Paper) packs the
// nibbles back into bytes, folding the odd-length and terminator flags into
// the first byte. It is used only inside node RLP.

const terminatorNibble = 16

// UnpackNibbles splits a key into the sequence of half-byte digits that forms
// its path in the trie. No terminator is appended.
func UnpackNibbles(key []byte) []byte {
	nibbles := make([]byte, len(key)*2)
	for i, b := range key {
		nibbles[i*2] = b / 16
		nibbles[i*2+1] = b % 16
	}
	return nibbles
}

func hexToCompact(hex []byte) []byte {
	terminator := byte(0)
	if hasTerm(hex) {
		terminator = 1
		hex = hex[:len(hex)-1]
	}
	buf := make([]byte, len(hex)/2+1)
	buf[0] = terminator << 5 // the flag byte
	if len(hex)&1 == 1 {
		buf[0] |= 1 << 4 // odd flag
		buf[0] |= hex[0] // first nibble is contained in the first byte
		hex = hex[1:]
	}
	for bi, ni := 1, 0; ni < len(hex); bi, ni = bi+1, ni+2 {
		buf[bi] = hex[ni]<<4 | hex[ni+1]
	}
	return buf
}

// hasTerm returns whether a hex key has the terminator flag.
func hasTerm(s []byte) bool {
	return len(s) > 0 && s[len(s)-1] == terminatorNibble
}

// prefixLen returns the length of the common prefix of a and b.
func prefixLen(a, b []byte) int {
	var i, length = 0, len(a)
	if len(b) < length {
		length = len(b)
	}
	for ; i < length; i++ {
		if a[i] != b[i] {
			break
		}
	}
	return i
}
