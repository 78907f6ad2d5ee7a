/*
 * Open Chinese Convert
 *
 * Copyright 2010-2020 Carbo Kuo <byvoid@byvoid.com>
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

// Package dict provides the longest-match dictionary: a sorted key→value
// table over code-point strings, an alternate trie backing store, an
// LRU-caching decorator, and a dictionary group that selects among
// several dictionaries for one conversion stage.
package dict

import (
	"strings"

	"github.com/gocconv/opencc-go/pkg/runes"
)

// Entry is an immutable dictionary entry: a key and one or more
// replacement values. The default value (Values()[0]) is what a plain
// substitution pass emits; NumValues/Values exist for callers that want
// every alternative (e.g. to build a reverse dictionary).
type Entry interface {
	Key() string
	Values() []string
	GetDefault() string
	NumValues() int
	// KeyLength returns the key's length in code points, not bytes.
	KeyLength() int
	String() string
}

// singleEntry is a key with exactly one replacement value. This is the
// overwhelmingly common case (a -> b) and is kept unboxed from the
// general multi-value form to avoid a slice allocation per entry.
type singleEntry struct {
	key   string
	value string
	klen  int
}

// NewSingleEntry creates an Entry with exactly one value.
func NewSingleEntry(key, value string) Entry {
	return &singleEntry{key: key, value: value, klen: runes.Len(key)}
}

func (e *singleEntry) Key() string       { return e.key }
func (e *singleEntry) Values() []string  { return []string{e.value} }
func (e *singleEntry) GetDefault() string { return e.value }
func (e *singleEntry) NumValues() int    { return 1 }
func (e *singleEntry) KeyLength() int    { return e.klen }
func (e *singleEntry) String() string    { return e.key + "\t" + e.value }

// multiEntry is a key with several alternative replacement values, e.g.
// a simplified character that could map back to more than one
// traditional variant. GetDefault returns the first value.
type multiEntry struct {
	key    string
	values []string
	klen   int
}

// NewMultiEntry creates an Entry from a key and one or more values.
func NewMultiEntry(key string, values []string) Entry {
	if len(values) == 1 {
		return NewSingleEntry(key, values[0])
	}
	cp := make([]string, len(values))
	copy(cp, values)
	return &multiEntry{key: key, values: cp, klen: runes.Len(key)}
}

func (e *multiEntry) Key() string      { return e.key }
func (e *multiEntry) Values() []string { return e.values }
func (e *multiEntry) GetDefault() string {
	if len(e.values) == 0 {
		return e.key
	}
	return e.values[0]
}
func (e *multiEntry) NumValues() int { return len(e.values) }
func (e *multiEntry) KeyLength() int { return e.klen }
func (e *multiEntry) String() string {
	return e.key + "\t" + strings.Join(e.values, " ")
}
