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

// Package conversion implements the multi-stage conversion pipeline: an
// ordered chain of dictionary groups, one per stage, each stage's
// output feeding the next stage's input.
package conversion

import (
	"errors"

	"github.com/gocconv/opencc-go/pkg/dict"
	"github.com/gocconv/opencc-go/pkg/segmentation"
)

// ErrNoDict is returned when Convert is called against an empty chain,
// or a stage whose group has no dictionaries at all.
var ErrNoDict = errors.New("conversion: no dictionary configured")

// Chain is an ordered list of dictionary groups, one per pipeline
// stage. Stage k uses Groups()[k]'s current dictionary (the caller configures each
// group's current before calling Convert; the chain never mutates it).
type Chain struct {
	groups []*dict.Group
}

// NewChain creates a Chain from an ordered list of stage groups.
func NewChain(groups []*dict.Group) *Chain {
	return &Chain{groups: groups}
}

// Groups returns the stage list.
func (c *Chain) Groups() []*dict.Group { return c.groups }

// Convert runs in through every stage in sequence, using scanner (and
// its SP scratch) for each stage's ambiguity-window scan. Implements
// spec.md §4.5: a single-stage chain delegates directly to the
// scanner with the caller's buffers; a multi-stage chain ping-pongs
// between a scratch buffer (sized to len(out)) and out itself, copying
// into out at the end only if the last stage happened to land in
// scratch. The first stage's consumed count is the overall result,
// matching the abstract Converter API's "consumed = what the first
// stage processed" contract.
func (c *Chain) Convert(scanner *segmentation.Scanner, in []rune, out []rune) (consumed, produced int, err error) {
	if len(c.groups) == 0 {
		return 0, 0, ErrNoDict
	}
	for _, g := range c.groups {
		if g.Count() == 0 {
			return 0, 0, ErrNoDict
		}
	}

	if len(c.groups) == 1 {
		return scanner.Segment(c.groups[0], in, out)
	}

	scratch := make([]rune, len(out))
	buffers := [2][]rune{scratch, out}

	curIn := in
	var firstConsumed int
	var lastProduced int
	lastStage := len(c.groups) - 1

	for k, g := range c.groups {
		curOut := buffers[k%2]
		stageConsumed, stageProduced, stageErr := scanner.Segment(g, curIn, curOut)
		if stageErr != nil {
			return 0, 0, stageErr
		}
		if k == 0 {
			firstConsumed = stageConsumed
		}
		curIn = curOut[:stageProduced]
		lastProduced = stageProduced
	}

	if lastStage%2 == 0 {
		// the final stage wrote into buffers[0] (scratch); copy it over
		copy(out, scratch[:lastProduced])
	}

	return firstConsumed, lastProduced, nil
}
