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

// Group is a non-empty ordered list of dictionaries that are
// alternatives for one conversion stage, plus a current cursor
// selecting which one is active. Per spec.md §4.2 a Group is an active
// dictionary *selector*, not a merge of all its members: every query
// delegates to Dicts()[Current()] alone. Switching Current is O(1) and
// never mutates the underlying dictionaries, so a Group may be read
// concurrently by any number of converters as long as SetCurrent calls
// (if any) are serialized by the caller.
type Group struct {
	dicts   []Dict
	current int
}

// NewGroup creates a Group over dicts, starting at dicts[0].
func NewGroup(dicts []Dict) *Group {
	return &Group{dicts: dicts, current: 0}
}

// SetCurrent selects which dictionary in the group answers queries.
// Out-of-range indices are ignored (the previous selection is kept).
func (g *Group) SetCurrent(i int) {
	if i >= 0 && i < len(g.dicts) {
		g.current = i
	}
}

// Current returns the index of the active dictionary.
func (g *Group) Current() int { return g.current }

// Count returns the number of dictionaries in the group.
func (g *Group) Count() int { return len(g.dicts) }

// Dicts returns the underlying dictionary list.
func (g *Group) Dicts() []Dict { return g.dicts }

// active returns the currently selected dictionary, or nil if the group
// is empty.
func (g *Group) active() Dict {
	if len(g.dicts) == 0 {
		return nil
	}
	return g.dicts[g.current]
}

// MatchLongest delegates to the active dictionary.
func (g *Group) MatchLongest(word []rune, maxlen int) (string, int, bool) {
	d := g.active()
	if d == nil {
		return "", 0, false
	}
	return d.MatchLongest(word, maxlen)
}

// AllMatchLengths delegates to the active dictionary.
func (g *Group) AllMatchLengths(word []rune, out []int) []int {
	d := g.active()
	if d == nil {
		return out[:0]
	}
	return d.AllMatchLengths(word, out)
}

// KeyMaxLength delegates to the active dictionary.
func (g *Group) KeyMaxLength() int {
	d := g.active()
	if d == nil {
		return 0
	}
	return d.KeyMaxLength()
}

// Entries delegates to the active dictionary.
func (g *Group) Entries() []Entry {
	d := g.active()
	if d == nil {
		return nil
	}
	return d.Entries()
}
