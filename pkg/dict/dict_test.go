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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTextDict(t *testing.T) *TextDict {
	t.Helper()
	lexicon := NewLexicon()
	lexicon.Add(NewSingleEntry("一", "1"))
	lexicon.Add(NewSingleEntry("一个", "ONE"))
	lexicon.Add(NewSingleEntry("一个人", "SOLO"))
	lexicon.Add(NewSingleEntry("人", "PERSON"))
	lexicon.Sort()
	return NewTextDict(lexicon)
}

func TestTextDictMatchLongestPrefersLongestKey(t *testing.T) {
	d := newTestTextDict(t)
	value, matched, ok := d.MatchLongest([]rune("一个人在"), 0)
	require.True(t, ok)
	assert.Equal(t, "SOLO", value)
	assert.Equal(t, 3, matched)
}

func TestTextDictMatchLongestRespectsMaxlenCap(t *testing.T) {
	d := newTestTextDict(t)
	value, matched, ok := d.MatchLongest([]rune("一个人在"), 2)
	require.True(t, ok)
	assert.Equal(t, "ONE", value)
	assert.Equal(t, 2, matched)
}

func TestTextDictMatchLongestNoMatch(t *testing.T) {
	d := newTestTextDict(t)
	_, _, ok := d.MatchLongest([]rune("無"), 0)
	assert.False(t, ok)
}

func TestTextDictAllMatchLengthsDescending(t *testing.T) {
	d := newTestTextDict(t)
	lengths := d.AllMatchLengths([]rune("一个人在"), nil)
	assert.Equal(t, []int{3, 2, 1}, lengths)
}

func TestTextDictAllMatchLengthsEmptyWhenNoMatch(t *testing.T) {
	d := newTestTextDict(t)
	lengths := d.AllMatchLengths([]rune("無"), nil)
	assert.Empty(t, lengths)
}

func TestTextDictKeyMaxLength(t *testing.T) {
	d := newTestTextDict(t)
	assert.Equal(t, 3, d.KeyMaxLength())
}

func TestLoadTextDictRejectsDuplicateKey(t *testing.T) {
	_, err := LoadTextDict(strings.NewReader("甲\tA1\n甲\tA2\n"))
	assert.ErrorIs(t, err, ErrDictLoad)
}

func TestLoadTextDictSortsBeforeBuilding(t *testing.T) {
	// code-point order: 乙 (U+4E59) sorts before 甲 (U+7532)
	d, err := LoadTextDict(strings.NewReader("甲\tA\n乙\tB\n"))
	require.NoError(t, err)
	entries := d.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "乙", entries[0].Key())
}

func TestTextDictEmptyNeverMatches(t *testing.T) {
	d := NewTextDict(NewLexicon())
	_, _, ok := d.MatchLongest([]rune("x"), 0)
	assert.False(t, ok)
	assert.Empty(t, d.AllMatchLengths([]rune("x"), nil))
}
