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

package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocconv/opencc-go/pkg/dict"
)

func entryDict(t *testing.T, pairs ...string) dict.Dict {
	t.Helper()
	require.Equal(t, 0, len(pairs)%2)
	lexicon := dict.NewLexicon()
	for i := 0; i+1 < len(pairs); i += 2 {
		lexicon.Add(dict.NewSingleEntry(pairs[i], pairs[i+1]))
	}
	lexicon.Sort()
	return dict.NewTextDict(lexicon)
}

func runSegment(t *testing.T, d dict.Dict, input string) string {
	t.Helper()
	s := NewScanner()
	in := []rune(input)
	out := make([]rune, len(in)*8+8)
	consumed, produced, err := s.Segment(d, in, out)
	require.NoError(t, err)
	require.Equal(t, len(in), consumed)
	return string(out[:produced])
}

func TestSegmentPassesThroughUnmatchedText(t *testing.T) {
	d := entryDict(t, "简体", "簡體")
	assert.Equal(t, "Hello", runSegment(t, d, "Hello"))
}

func TestSegmentSingleDictionaryHit(t *testing.T) {
	d := entryDict(t, "简体", "簡體")
	assert.Equal(t, "簡體中文", runSegment(t, d, "简体中文"))
}

func TestSegmentPrefersMinimumSegmentCountOverGreedyMatch(t *testing.T) {
	// "ABC" greedily matches "AB" then falls back to "C" (2 segments);
	// but "A" + "BC" is also 2 segments, and "ABC" itself would be 1 if
	// it were a key. Here the greedy longest match at position 0 is NOT
	// the chosen cut: "AB" and "BC" overlap and both cuts reach the
	// minimum of 2 segments, so the tie-break decides.
	d := entryDict(t, "AB", "xx", "BC", "Y")
	// With only "AB"/"C" or "A"/"BC" both at 2 segments each, the
	// asymmetric tie-break prefers the later-starting multi-char edge,
	// i.e. "A" + "BC" over "AB" + "C".
	assert.Equal(t, "AY", runSegment(t, d, "ABC"))
}

func TestSegmentAmbiguityWindowBoundsDistantMatches(t *testing.T) {
	d := entryDict(t, "简体中文", "SIMP_ZH", "中文转换", "ZH_CONVERT")
	// "简体中文转换" — the two keys overlap at "中文", forcing one
	// ambiguity window across the whole string. Both candidate cuts tie
	// at 3 segments ("简"+"体"+"中文转换" vs "简体中文"+"转"+"换"); the
	// asymmetric tie-break prefers the multi-character edge with the
	// later start, i.e. "中文转换" over "简体中文".
	result := runSegment(t, d, "简体中文转换")
	assert.Equal(t, "简体ZH_CONVERT", result)
}

func TestSegmentEmptyInput(t *testing.T) {
	d := entryDict(t, "简体", "簡體")
	s := NewScanner()
	consumed, produced, err := s.Segment(d, nil, make([]rune, 4))
	require.NoError(t, err)
	assert.Equal(t, 0, consumed)
	assert.Equal(t, 0, produced)
}

func TestSegmentOutputFullRecoversWithPartialConsumption(t *testing.T) {
	d := entryDict(t, "简体", "簡體", "中文", "中文")
	s := NewScanner()
	in := []rune("简体中文")
	out := make([]rune, 2)

	consumed, produced, err := s.Segment(d, in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, consumed)
	assert.Equal(t, 2, produced)
	assert.Equal(t, "簡體", string(out[:produced]))

	consumed2, produced2, err := s.Segment(d, in[consumed:], out)
	require.NoError(t, err)
	assert.Equal(t, 2, consumed2)
	assert.Equal(t, "中文", string(out[:produced2]))
}

func TestSegmentOutputFullWithZeroSpaceIsAnErrorNotAPanic(t *testing.T) {
	d := entryDict(t, "简体", "簡體")
	s := NewScanner()
	consumed, produced, err := s.Segment(d, []rune("简体"), nil)
	assert.Error(t, err)
	assert.Equal(t, 0, consumed)
	assert.Equal(t, 0, produced)
}

func TestScannerReusesScratchAcrossCalls(t *testing.T) {
	d := entryDict(t, "简体", "簡體")
	s := NewScanner()
	out := make([]rune, 16)

	_, _, err := s.Segment(d, []rune("简体"), out)
	require.NoError(t, err)
	// a second, larger call must grow the scratch rather than reuse a
	// now-too-small allocation
	_, _, err = s.Segment(d, []rune("简体简体简体简体简体"), out)
	require.NoError(t, err)
}
