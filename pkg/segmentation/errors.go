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

// Package segmentation implements the shortest-path segmenter (a
// dynamic-programming minimum-segment-count cut over a bounded window)
// and the ambiguity-window scanner that bounds each call to it.
package segmentation

import "errors"

// ErrOutputFull is returned when the output buffer cannot hold even the
// next atomic segment's replacement and no code points were consumed
// yet this call. A caller that sees it should supply a larger buffer
// and retry with the same, unconsumed input.
var ErrOutputFull = errors.New("segmentation: output buffer full")
