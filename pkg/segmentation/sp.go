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
	"math"

	"github.com/gocconv/opencc-go/pkg/dict"
)

// spBuffers is the scratch arena a shortest-path segmentation call
// reuses across invocations: match_length, min_len, parent and path,
// each sized to at least window length + 1. It grows by reallocating
// all four arrays when a larger window arrives and never shrinks,
// mirroring the original converter's sp_seg_buffer.
type spBuffers struct {
	matchLength []int
	minLen      []int
	parent      []int
	path        []int
	size        int
}

func (b *spBuffers) ensure(n int) {
	need := n + 1
	if b.size >= need {
		return
	}
	b.matchLength = make([]int, need)
	b.minLen = make([]int, need)
	b.parent = make([]int, need)
	b.path = make([]int, need)
	b.size = need
}

// segmentWindow computes a minimum-segment-count cut of word (a window
// of exactly len(word) code points) and emits the replacement for each
// segment into out, implementing spec.md §4.3 exactly: the special
// single-character case, the DP with its asymmetric tie-break, path
// reconstruction, and short-write recovery at a clean segment boundary.
//
// Returns the number of code points of word consumed and the number of
// code points written to out. If out cannot hold even the first
// segment's replacement, returns (0, 0, ErrOutputFull); otherwise a
// short write returns whatever was consumed/produced before the
// overflow, with a nil error — the caller resumes from word[consumed:].
func (b *spBuffers) segmentWindow(d dict.Dict, word []rune, out []rune) (consumed, produced int, err error) {
	n := len(word)
	if n == 0 {
		return 0, 0, nil
	}

	if n == 1 {
		value, _, ok := d.MatchLongest(word, 1)
		if !ok {
			if len(out) < 1 {
				return 0, 0, ErrOutputFull
			}
			out[0] = word[0]
			return 1, 1, nil
		}
		vr := []rune(value)
		if len(vr) > len(out) {
			return 0, 0, ErrOutputFull
		}
		copy(out, vr)
		return 1, len(vr), nil
	}

	b.ensure(n)
	minLen, parent, path := b.minLen, b.parent, b.path

	for i := 0; i <= n; i++ {
		minLen[i] = math.MaxInt
	}
	minLen[0] = 0
	parent[0] = 0

	for i := 0; i < n; i++ {
		lengths := d.AllMatchLengths(word[i:], b.matchLength[:0])
		hasFallback := len(lengths) > 0 && lengths[len(lengths)-1] == 1
		if !hasFallback {
			lengths = append(lengths, 1)
		}

		for _, k := range lengths {
			if k > 1 {
				if minLen[i]+1 <= minLen[i+k] {
					minLen[i+k] = minLen[i] + 1
					parent[i+k] = i
				}
			} else if minLen[i]+1 < minLen[i+k] {
				minLen[i+k] = minLen[i] + 1
				parent[i+k] = i
			}
		}
	}

	cuts := minLen[n]
	for i, j := n, cuts; i != 0; i = parent[i] {
		j--
		path[j] = i
	}

	begin := 0
	for idx := 0; idx < cuts; idx++ {
		end := path[idx]

		value, matched, ok := d.MatchLongest(word[begin:], end-begin)
		if ok {
			vr := []rune(value)
			if len(vr) > len(out)-produced {
				if consumed > 0 {
					break
				}
				return 0, 0, ErrOutputFull
			}
			copy(out[produced:], vr)
			produced += len(vr)
			consumed += matched
			begin += matched
		} else {
			if len(out)-produced < 1 {
				if consumed > 0 {
					break
				}
				return 0, 0, ErrOutputFull
			}
			out[produced] = word[begin]
			produced++
			consumed++
			begin++
		}
	}

	return consumed, produced, nil
}
