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

package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gocconv/opencc-go/pkg/runes"
)

// Errors returned while loading a lexicon from a text table. They are
// wrapped with fmt.Errorf("%w: ...") so callers can match with
// errors.Is while still getting a line number in the message.
var (
	// ErrDictLoad covers missing files and malformed lines (any line,
	// including an empty one, with fewer than two fields).
	ErrDictLoad = errors.New("dict: load error")
	// ErrEncoding covers a key or value that is not valid UTF-8.
	ErrEncoding = errors.New("dict: encoding error")
)

// Lexicon is an unordered bag of entries, as read from a text table,
// before it has been sorted into a TextDict.
type Lexicon struct {
	entries []Entry
}

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{entries: make([]Entry, 0)}
}

// Add appends an entry.
func (l *Lexicon) Add(e Entry) { l.entries = append(l.entries, e) }

// Len returns the number of entries.
func (l *Lexicon) Len() int { return len(l.entries) }

// At returns the entry at index i, or nil if out of range.
func (l *Lexicon) At(i int) Entry {
	if i < 0 || i >= len(l.entries) {
		return nil
	}
	return l.entries[i]
}

// Entries returns the underlying slice.
func (l *Lexicon) Entries() []Entry { return l.entries }

// Sort orders entries ascending by key. Because valid UTF-8 byte order
// coincides with code-point order, a plain string comparison is
// sufficient — there is no need to decode to runes first.
func (l *Lexicon) Sort() {
	sort.Slice(l.entries, func(i, j int) bool {
		return l.entries[i].Key() < l.entries[j].Key()
	})
}

// IsSorted reports whether the lexicon is currently in key order.
func (l *Lexicon) IsSorted() bool {
	for i := 1; i < len(l.entries); i++ {
		if l.entries[i].Key() < l.entries[i-1].Key() {
			return false
		}
	}
	return true
}

// IsUnique reports whether every key is distinct. If dupkey is non-nil
// and a duplicate exists, *dupkey is set to the first one found (by
// sorted order, so the result is deterministic regardless of load
// order).
func (l *Lexicon) IsUnique(dupkey *string) bool {
	if len(l.entries) == 0 {
		return true
	}
	cp := make([]Entry, len(l.entries))
	copy(cp, l.entries)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Key() < cp[j].Key() })
	for i := 1; i < len(cp); i++ {
		if cp[i].Key() == cp[i-1].Key() {
			if dupkey != nil {
				*dupkey = cp[i].Key()
			}
			return false
		}
	}
	return true
}

// ParseLexicon reads a line-oriented "key value..." table from r. Every
// line must have at least two whitespace separated fields: the key,
// then one or more values (further fields beyond the first become
// alternative values, not ignored, since spec.md's "value" is this
// dictionary's GetDefault() and OpenCC dictionaries are routinely
// one-to-many). An empty or single-field line is a load error; a key
// or value that isn't valid UTF-8 is an encoding error.
func ParseLexicon(r io.Reader) (*Lexicon, error) {
	lexicon := NewLexicon()
	scanner := bufio.NewScanner(r)
	// A dictionary line can exceed bufio.Scanner's 64KiB default only
	// for pathological input; raise the cap well past any real OpenCC
	// table while still bounding worst-case memory.
	buf := make([]byte, 0, 4096)
	scanner.Buffer(buf, 1<<20)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: expected \"key value\", got %q", ErrDictLoad, lineNum, line)
		}

		key := fields[0]
		values := fields[1:]

		if _, err := runes.Decode(key); err != nil {
			return nil, fmt.Errorf("%w: line %d: key %q: %v", ErrEncoding, lineNum, key, err)
		}
		for _, v := range values {
			if _, err := runes.Decode(v); err != nil {
				return nil, fmt.Errorf("%w: line %d: value %q: %v", ErrEncoding, lineNum, v, err)
			}
		}

		lexicon.Add(NewMultiEntry(key, values))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictLoad, err)
	}

	return lexicon, nil
}

// ParseLexiconFromFile opens filename and parses it as a lexicon table.
func ParseLexiconFromFile(filename string) (*Lexicon, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictLoad, err)
	}
	defer f.Close()
	return ParseLexicon(f)
}
