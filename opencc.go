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

// Package opencc is the top-level facade: it ties a dictionary config,
// the shortest-path segmenter, and the multi-stage conversion chain
// together into a Converter, and wraps that in a string-oriented
// SimpleConverter for callers who don't want to manage rune buffers
// themselves.
package opencc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocconv/opencc-go/pkg/config"
	"github.com/gocconv/opencc-go/pkg/conversion"
	"github.com/gocconv/opencc-go/pkg/dict"
	"github.com/gocconv/opencc-go/pkg/runes"
	"github.com/gocconv/opencc-go/pkg/segmentation"
)

// DefaultBufferSize is the initial rune capacity SimpleConverter grows
// its scratch output buffer from, doubling on each ErrOutputFull retry.
// 1024 mirrors the original converter's default segmentation buffer.
const DefaultBufferSize = 1024

// Converter is the rune-buffer-oriented engine: a conversion chain plus
// the scanner scratch it reuses across calls. It is not safe for
// concurrent use (the scanner owns mutable scratch arrays); build one
// Converter per goroutine from the same Chain, which is safe to share.
type Converter struct {
	name    string
	chain   *conversion.Chain
	scanner *segmentation.Scanner
}

// NewConverter creates a Converter over chain.
func NewConverter(name string, chain *conversion.Chain) *Converter {
	return &Converter{name: name, chain: chain, scanner: segmentation.NewScanner()}
}

// Convert runs in through the conversion chain, writing into out. See
// conversion.Chain.Convert for the consumed/produced/err contract.
func (c *Converter) Convert(in []rune, out []rune) (consumed, produced int, err error) {
	return c.chain.Convert(c.scanner, in, out)
}

// ConvertString converts text in one call, growing an internal rune
// buffer and retrying as needed so the caller never sees ErrOutputFull.
func (c *Converter) ConvertString(text string) (string, error) {
	in, err := runes.Decode(text)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(text))
	out := make([]rune, DefaultBufferSize)

	for len(in) > 0 {
		consumed, produced, err := c.Convert(in, out)
		if err != nil {
			if errors.Is(err, segmentation.ErrOutputFull) {
				out = make([]rune, len(out)*2)
				continue
			}
			return "", err
		}
		sb.WriteString(runes.Encode(out[:produced]))
		in = in[consumed:]
	}
	return sb.String(), nil
}

// ConvertToBuffer converts input and copies as much of the result as
// fits into buffer, returning the number of bytes written. A result
// that doesn't fit is truncated at the last code point boundary that
// fits, matching the original C API's fixed-buffer convention without
// ever writing a split multi-byte character.
func (c *Converter) ConvertToBuffer(input string, buffer []byte) (int, error) {
	result, err := c.ConvertString(input)
	if err != nil {
		return 0, err
	}
	if len(result) > len(buffer) {
		rs := []rune(result)
		offsets := runes.ByteOffsets(rs)
		cut := 0
		for _, off := range offsets {
			if off > len(buffer) {
				break
			}
			cut = off
		}
		result = result[:cut]
	}
	return copy(buffer, result), nil
}

// Name returns the converter's config name, if it was built from one.
func (c *Converter) Name() string { return c.name }

// Chain returns the underlying conversion chain.
func (c *Converter) Chain() *conversion.Chain { return c.chain }

// SimpleConverter is a thin string-in-string-out wrapper around
// Converter, built from a JSON config file the way the original CLI and
// language bindings construct one.
type SimpleConverter struct {
	converter *Converter
}

// NewSimpleConverter builds a SimpleConverter from a config file on
// disk. Dictionary files are looked up in "data" and "data/dictionary"
// (relative to the working directory), then the config's own
// directory, a sibling "../dictionary" directory, and any searchPaths
// given, in that order.
func NewSimpleConverter(configFilename string, searchPaths ...string) (*SimpleConverter, error) {
	configDir := filepath.Dir(configFilename)
	if configDir == "" {
		configDir = "."
	}

	allPaths := append([]string{configDir, filepath.Join(configDir, "..", "dictionary"), "data", "data/dictionary"}, searchPaths...)

	cfg, err := config.LoadConfig(configFilename)
	if err != nil {
		return nil, err
	}
	return NewSimpleConverterFromConfig(cfg, allPaths...)
}

// NewSimpleConverterFromConfig builds a SimpleConverter from an
// in-memory Config, searching searchPaths (plus "data" and
// "data/dictionary") for dictionary files.
func NewSimpleConverterFromConfig(cfg *config.Config, searchPaths ...string) (*SimpleConverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	paths := append([]string{"data", "data/dictionary"}, searchPaths...)

	stages := make([]*dict.Group, 0, len(cfg.ConversionChain)+1)

	if cfg.Segmentation != nil && cfg.Segmentation.Dict != nil {
		segGroup, err := loadGroupFromConfig(cfg.Segmentation.Dict, paths)
		if err != nil {
			return nil, err
		}
		stages = append(stages, segGroup)
	}

	for _, step := range cfg.ConversionChain {
		g, err := loadGroupFromConfig(step.Dict, paths)
		if err != nil {
			return nil, err
		}
		stages = append(stages, g)
	}

	chain := conversion.NewChain(stages)
	converter := NewConverter(cfg.Name, chain)
	return &SimpleConverter{converter: converter}, nil
}

// Convert converts text and returns the result.
func (s *SimpleConverter) Convert(text string) (string, error) {
	return s.converter.ConvertString(text)
}

// ConvertCString converts only the portion of input before its first
// NUL byte, mirroring the C API's null-terminated string convention.
func (s *SimpleConverter) ConvertCString(input string) (string, error) {
	for i, ch := range input {
		if ch == 0 {
			return s.converter.ConvertString(input[:i])
		}
	}
	return s.converter.ConvertString(input)
}

// ConvertWithLength converts only the first length bytes of input.
func (s *SimpleConverter) ConvertWithLength(input string, length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if length >= len(input) {
		return s.converter.ConvertString(input)
	}
	return s.converter.ConvertString(input[:length])
}

// ConvertToBuffer converts input and writes as much of the result as
// fits into buffer, returning the number of bytes written.
func (s *SimpleConverter) ConvertToBuffer(input string, buffer []byte) (int, error) {
	return s.converter.ConvertToBuffer(input, buffer)
}

// Converter returns the underlying Converter.
func (s *SimpleConverter) Converter() *Converter { return s.converter }

// loadGroupFromConfig builds one pipeline stage's dict.Group from its
// config, recursively loading every alternative in a "group" entry.
func loadGroupFromConfig(cfg *config.DictConfig, searchPaths []string) (*dict.Group, error) {
	if cfg.Type == "group" {
		dicts := make([]dict.Dict, len(cfg.Dicts))
		for i, d := range cfg.Dicts {
			loaded, err := loadDictFromConfig(d, searchPaths)
			if err != nil {
				return nil, err
			}
			dicts[i] = loaded
		}
		g := dict.NewGroup(dicts)
		g.SetCurrent(cfg.Current)
		return g, nil
	}

	d, err := loadDictFromConfig(cfg, searchPaths)
	if err != nil {
		return nil, err
	}
	return dict.NewGroup([]dict.Dict{d}), nil
}

// loadDictFromConfig loads a single (non-group) dictionary from
// configuration: "text" and "trie" load a lexicon table from disk
// through the matching constructor; "cached" loads cfg.Inner and wraps
// it in an LRU cache of cfg.CacheSize entries (0 uses
// dict.DefaultCacheSize); "group" is only valid as the top-level config
// for a stage and is rejected here to avoid silently nesting selectors.
func loadDictFromConfig(cfg *config.DictConfig, searchPaths []string) (dict.Dict, error) {
	switch cfg.Type {
	case "text":
		return loadTextDict(cfg.File, searchPaths)
	case "trie":
		return loadTrieDict(cfg.File, searchPaths)
	case "cached":
		if cfg.Inner == nil {
			return nil, fmt.Errorf("%w: cached dict missing inner", config.ErrInvalidConfig)
		}
		inner, err := loadDictFromConfig(cfg.Inner, searchPaths)
		if err != nil {
			return nil, err
		}
		return dict.NewCachingDict(inner, cfg.CacheSize), nil
	case "group":
		return nil, fmt.Errorf("%w: nested group dict is not supported", config.ErrInvalidConfig)
	default:
		return nil, config.ErrUnknownDictType
	}
}

func loadTextDict(filename string, searchPaths []string) (dict.Dict, error) {
	path := findFile(filename, searchPaths)
	if path == "" {
		return nil, fmt.Errorf("dictionary file not found: %s (searched in: %v)", filename, searchPaths)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dict.LoadTextDict(f)
}

func loadTrieDict(filename string, searchPaths []string) (dict.Dict, error) {
	path := findFile(filename, searchPaths)
	if path == "" {
		return nil, fmt.Errorf("dictionary file not found: %s (searched in: %v)", filename, searchPaths)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dict.LoadTrieDict(f)
}

// findFile searches for a file in the given paths, or treats filename
// as absolute if it already is one.
func findFile(filename string, searchPaths []string) string {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename
		}
		return ""
	}

	for _, path := range searchPaths {
		fullPath := filepath.Join(path, filename)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath
		}
	}

	return ""
}
