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

package dict

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocconv/opencc-go/pkg/runes"
)

// Dict is a longest-match dictionary: a sorted key→value table with
// exact, longest-prefix, and all-prefix-lengths lookups. word is always
// a code-point buffer (not raw UTF-8 bytes), so lengths and offsets are
// in code points throughout.
type Dict interface {
	// MatchLongest returns the replacement value and matched length for
	// the longest key that is a prefix of word, searching at most
	// min(maxlen, KeyMaxLength(), len(word)) code points (maxlen == 0
	// means "no cap beyond len(word)"). ok is false if no key matches.
	MatchLongest(word []rune, maxlen int) (value string, matched int, ok bool)

	// AllMatchLengths appends every k in [1, min(KeyMaxLength(),
	// len(word))] such that word[:k] is a key, in descending order, and
	// returns the resulting slice. This ordering is load-bearing: the
	// segmenter relies on the last element (if any) being the shortest.
	AllMatchLengths(word []rune, out []int) []int

	// KeyMaxLength returns the longest key length, in code points.
	KeyMaxLength() int

	// Entries returns every entry, for export/merging.
	Entries() []Entry
}

// TextDict is a Dict backed by a sorted slice, searched by binary
// search. It is immutable after construction.
type TextDict struct {
	entries   []Entry
	maxKeyLen int
}

// NewTextDict builds a TextDict from a lexicon. The lexicon is sorted
// internally if it isn't already, so callers never have to remember to
// call Lexicon.Sort themselves.
func NewTextDict(lexicon *Lexicon) *TextDict {
	if !lexicon.IsSorted() {
		lexicon.Sort()
	}
	entries := lexicon.Entries()
	maxLen := 0
	for _, e := range entries {
		if e.KeyLength() > maxLen {
			maxLen = e.KeyLength()
		}
	}
	return &TextDict{entries: entries, maxKeyLen: maxLen}
}

// LoadTextDict reads a lexicon table from r and builds a TextDict from
// it. Unlike the original C loader, a dictionary containing a duplicate
// key is rejected outright (see SPEC_FULL.md §12) rather than silently
// keeping whichever copy sorted first.
func LoadTextDict(r io.Reader) (*TextDict, error) {
	lexicon, err := ParseLexicon(r)
	if err != nil {
		return nil, err
	}
	lexicon.Sort()
	var dup string
	if !lexicon.IsUnique(&dup) {
		return nil, fmt.Errorf("%w: duplicate key %q", ErrDictLoad, dup)
	}
	return NewTextDict(lexicon), nil
}

// search returns the index of the entry with the given key, or -1.
func (d *TextDict) search(key string) int {
	idx := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Key() >= key
	})
	if idx < len(d.entries) && d.entries[idx].Key() == key {
		return idx
	}
	return -1
}

// MatchLongest implements spec.md §4.1: scan candidate lengths from
// L = min(maxlen, maxKeyLen, len(word)) down to 1, returning the first
// (i.e. longest) one that is a key.
func (d *TextDict) MatchLongest(word []rune, maxlen int) (string, int, bool) {
	if len(d.entries) == 0 {
		return "", 0, false
	}
	l := len(word)
	if maxlen > 0 && maxlen < l {
		l = maxlen
	}
	if d.maxKeyLen < l {
		l = d.maxKeyLen
	}
	for k := l; k > 0; k-- {
		prefix := runes.Encode(word[:k])
		if idx := d.search(prefix); idx >= 0 {
			return d.entries[idx].GetDefault(), k, true
		}
	}
	return "", 0, false
}

// AllMatchLengths implements spec.md §4.1: every prefix length that is a
// key, longest first.
func (d *TextDict) AllMatchLengths(word []rune, out []int) []int {
	out = out[:0]
	if len(d.entries) == 0 {
		return out
	}
	l := len(word)
	if d.maxKeyLen < l {
		l = d.maxKeyLen
	}
	for k := l; k > 0; k-- {
		prefix := runes.Encode(word[:k])
		if idx := d.search(prefix); idx >= 0 {
			out = append(out, k)
		}
	}
	return out
}

// KeyMaxLength returns the longest key length, in code points.
func (d *TextDict) KeyMaxLength() int { return d.maxKeyLen }

// Entries returns every entry in sorted order.
func (d *TextDict) Entries() []Entry { return d.entries }
