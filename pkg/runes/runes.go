/*
 * Open Chinese Convert
 *
 * Copyright 2010-2014 Carbo Kuo <byvoid@byvoid.com>
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package runes bridges the UTF-8 strings the dictionary and CLI deal in
// with the code-point ([]rune) buffers the segmenter indexes by position.
// Codec correctness itself is treated as an external guarantee: this
// package validates and converts, it does not implement UTF-8 decoding.
package runes

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a string cannot be decoded losslessly.
var ErrInvalidUTF8 = errors.New("runes: invalid UTF-8 encoding")

// Decode converts a UTF-8 string into its code-point sequence.
// Returns ErrInvalidUTF8 if s is not valid UTF-8.
func Decode(s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	return []rune(s), nil
}

// Encode concatenates a code-point sequence back into a UTF-8 string.
func Encode(rs []rune) string {
	return string(rs)
}

// Len returns the number of code points represented by s, without
// validating encoding (callers that need validation call Decode).
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// ByteOffsets returns, for each code-point index in rs (as produced by
// Decode from the original string), the absolute byte offset of that
// code point within a re-encoding of rs. It lets callers slice a prefix
// of runes back to the equivalent UTF-8 substring cheaply, mirroring the
// byte-map construction the original dictionary loader built by hand.
func ByteOffsets(rs []rune) []int {
	offsets := make([]int, len(rs)+1)
	off := 0
	for i, r := range rs {
		offsets[i] = off
		off += utf8.RuneLen(r)
	}
	offsets[len(rs)] = off
	return offsets
}
