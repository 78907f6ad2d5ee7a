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

func TestParseLexiconBasic(t *testing.T) {
	input := "简体\t簡體\n汉字\t漢字\n"
	lexicon, err := ParseLexicon(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, lexicon.Len())
	assert.Equal(t, "简体", lexicon.At(0).Key())
	assert.Equal(t, "簡體", lexicon.At(0).GetDefault())
}

func TestParseLexiconRejectsBlankLine(t *testing.T) {
	input := "简体\t簡體\n\n汉字\t漢字\n"
	_, err := ParseLexicon(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrDictLoad)
}

func TestParseLexiconRejectsCommentLine(t *testing.T) {
	// '#' lines get no special treatment: like any other line they must
	// carry a key and a value, so a one-field comment is malformed.
	input := "#header-comment\n简体\t簡體\n"
	_, err := ParseLexicon(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrDictLoad)
}

func TestParseLexiconMultiValueLine(t *testing.T) {
	input := "发\t髪 發\n"
	lexicon, err := ParseLexicon(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, lexicon.Len())
	assert.Equal(t, 2, lexicon.At(0).NumValues())
	assert.Equal(t, "髪", lexicon.At(0).GetDefault())
}

func TestParseLexiconRejectsLineWithoutValue(t *testing.T) {
	_, err := ParseLexicon(strings.NewReader("简体\n"))
	assert.ErrorIs(t, err, ErrDictLoad)
}

func TestParseLexiconRejectsInvalidUTF8Key(t *testing.T) {
	bad := string([]byte{0xff, 0xfe}) + "\tvalue\n"
	_, err := ParseLexicon(strings.NewReader(bad))
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestLexiconSortAndIsSorted(t *testing.T) {
	lexicon := NewLexicon()
	// code-point order: 乙 (U+4E59) sorts before 甲 (U+7532)
	lexicon.Add(NewSingleEntry("甲", "A"))
	lexicon.Add(NewSingleEntry("乙", "B"))
	assert.False(t, lexicon.IsSorted())
	lexicon.Sort()
	assert.True(t, lexicon.IsSorted())
	assert.Equal(t, "乙", lexicon.At(0).Key())
}

func TestLexiconIsUniqueReportsFirstDuplicateInSortedOrder(t *testing.T) {
	lexicon := NewLexicon()
	lexicon.Add(NewSingleEntry("乙", "B1"))
	lexicon.Add(NewSingleEntry("甲", "A1"))
	lexicon.Add(NewSingleEntry("甲", "A2"))

	var dup string
	assert.False(t, lexicon.IsUnique(&dup))
	assert.Equal(t, "甲", dup)
}
