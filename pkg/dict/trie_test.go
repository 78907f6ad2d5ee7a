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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrieDict(t *testing.T) *TrieDict {
	t.Helper()
	lexicon := NewLexicon()
	lexicon.Add(NewSingleEntry("一", "1"))
	lexicon.Add(NewSingleEntry("一个", "ONE"))
	lexicon.Add(NewSingleEntry("一个人", "SOLO"))
	lexicon.Add(NewSingleEntry("人", "PERSON"))
	return NewTrieDict(lexicon)
}

func TestTrieDictMatchLongest(t *testing.T) {
	d := newTestTrieDict(t)
	value, matched, ok := d.MatchLongest([]rune("一个人在"), 0)
	require.True(t, ok)
	assert.Equal(t, "SOLO", value)
	assert.Equal(t, 3, matched)
}

func TestTrieDictAllMatchLengthsDescending(t *testing.T) {
	d := newTestTrieDict(t)
	assert.Equal(t, []int{3, 2, 1}, d.AllMatchLengths([]rune("一个人在"), nil))
}

func TestTrieDictAgreesWithTextDictOverRandomishInputs(t *testing.T) {
	lexicon := NewLexicon()
	lexicon.Add(NewSingleEntry("一", "1"))
	lexicon.Add(NewSingleEntry("一个", "ONE"))
	lexicon.Add(NewSingleEntry("一个人", "SOLO"))
	lexicon.Add(NewSingleEntry("人", "PERSON"))
	lexicon.Add(NewSingleEntry("人口", "POP"))
	trie := NewTrieDict(lexicon)
	lexicon.Sort()
	text := NewTextDict(lexicon)

	inputs := []string{"一个人口普查", "人口", "无关", "一", "人"}
	for _, in := range inputs {
		word := []rune(in)
		tv, tm, tok := trie.MatchLongest(word, 0)
		xv, xm, xok := text.MatchLongest(word, 0)
		assert.Equal(t, xok, tok, in)
		assert.Equal(t, xv, tv, in)
		assert.Equal(t, xm, tm, in)
		assert.Equal(t, text.AllMatchLengths(word, nil), trie.AllMatchLengths(word, nil), in)
	}
}

func TestTrieDictKeyMaxLength(t *testing.T) {
	d := newTestTrieDict(t)
	assert.Equal(t, 3, d.KeyMaxLength())
}

func TestTrieDictEntriesCoversEveryKey(t *testing.T) {
	d := newTestTrieDict(t)
	keys := make(map[string]bool)
	for _, e := range d.Entries() {
		keys[e.Key()] = true
	}
	assert.Equal(t, map[string]bool{"一": true, "一个": true, "一个人": true, "人": true}, keys)
}
