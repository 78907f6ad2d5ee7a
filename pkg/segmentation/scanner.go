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

import "github.com/gocconv/opencc-go/pkg/dict"

// Scanner walks an input buffer, bounding each shortest-path
// segmentation call to a maximal ambiguity window: the smallest prefix
// within which some earlier position's longest match overlaps a later
// one. It owns the SP scratch arrays (spBuffers), which are allocated
// lazily and grown by reallocation as larger windows arrive — the
// arrays are reused across every Segment call for this Scanner's
// lifetime, across every stage of a conversion chain, not just within
// one call.
//
// A Scanner is not safe for concurrent use; the Dict it is given is
// read-only and may be shared freely across Scanners on other threads.
type Scanner struct {
	buf spBuffers
}

// NewScanner creates a Scanner with no scratch allocated yet.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Segment implements spec.md §4.4. It returns the number of code
// points consumed from in and produced into out. A short write (out
// filled at a clean segment boundary) is reported as success with
// consumed < len(in); only a zero-progress overflow is an error.
func (s *Scanner) Segment(d dict.Dict, in []rune, out []rune) (consumed, produced int, err error) {
	n := len(in)
	if n == 0 {
		return 0, 0, nil
	}

	start, bound := 0, 0

	for i := 0; i < n && consumed < n; i++ {
		if i != 0 && i == bound {
			c, p, segErr := s.buf.segmentWindow(d, in[start:bound], out[produced:])
			if segErr != nil {
				if consumed > 0 {
					return consumed, produced, nil
				}
				return 0, 0, segErr
			}
			consumed += c
			produced += p
			if c < bound-start {
				// the window was only partly written: stop here so the
				// caller resumes from in[consumed:]
				return consumed, produced, nil
			}
			start = i
		}

		_, matchLen, ok := d.MatchLongest(in[i:], 0)
		if !ok {
			matchLen = 1
		}
		if i+matchLen > bound {
			bound = i + matchLen
		}
	}

	if consumed < n {
		c, p, segErr := s.buf.segmentWindow(d, in[start:bound], out[produced:])
		if segErr != nil {
			if consumed > 0 {
				return consumed, produced, nil
			}
			return 0, 0, segErr
		}
		consumed += c
		produced += p
	}

	return consumed, produced, nil
}
