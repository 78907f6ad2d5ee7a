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
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used by NewCachingDict when the caller doesn't
// have a more specific number in mind. It covers the common-leading-
// character working set of a typical OpenCC phrase table without
// pinning an unbounded amount of memory behind a long-running process.
const DefaultCacheSize = 4096

type longestResult struct {
	value   string
	matched int
	ok      bool
}

// CachingDict decorates a Dict with an LRU cache in front of
// MatchLongest, keyed on the capped window text actually searched. It
// does not cache AllMatchLengths, since the shortest-path segmenter
// calls that once per window position with a different, usually unique,
// trailing window each time — the cache would thrash rather than help.
// Dictionaries are read-only after load (spec.md §5), so there is no
// invalidation story to get wrong: the cache lives exactly as long as
// the CachingDict wrapper does.
type CachingDict struct {
	inner Dict
	cache *lru.Cache[string, longestResult]
}

// NewCachingDict wraps inner with an LRU MatchLongest cache of the
// given size (entries, not bytes). A size <= 0 uses DefaultCacheSize.
func NewCachingDict(inner Dict, size int) *CachingDict {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, _ := lru.New[string, longestResult](size)
	return &CachingDict{inner: inner, cache: c}
}

func (c *CachingDict) cacheKey(word []rune, maxlen int) string {
	l := len(word)
	if c.inner.KeyMaxLength() < l {
		l = c.inner.KeyMaxLength()
	}
	if maxlen > 0 && maxlen < l {
		l = maxlen
	}
	// Encode the cap alongside the window text: the same text with two
	// different maxlen values can legitimately match different lengths.
	return string(rune(maxlen)) + string(word[:l])
}

// MatchLongest serves from cache when possible, otherwise delegates to
// inner and memoizes the result.
func (c *CachingDict) MatchLongest(word []rune, maxlen int) (string, int, bool) {
	key := c.cacheKey(word, maxlen)
	if r, ok := c.cache.Get(key); ok {
		return r.value, r.matched, r.ok
	}
	value, matched, ok := c.inner.MatchLongest(word, maxlen)
	c.cache.Add(key, longestResult{value: value, matched: matched, ok: ok})
	return value, matched, ok
}

// AllMatchLengths delegates directly to inner (see type doc).
func (c *CachingDict) AllMatchLengths(word []rune, out []int) []int {
	return c.inner.AllMatchLengths(word, out)
}

// KeyMaxLength delegates to inner.
func (c *CachingDict) KeyMaxLength() int { return c.inner.KeyMaxLength() }

// Entries delegates to inner.
func (c *CachingDict) Entries() []Entry { return c.inner.Entries() }
