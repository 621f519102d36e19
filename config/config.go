//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional YAML run configuration consumed
// by cmd/dep-tregex: whether to continue past malformed trees instead
// of stopping a run at the first one, a regex cache size hint, and a
// list of script directories.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level run configuration document.
type Config struct {
	// ContinueOnCodecError makes cmd/dep-tregex skip a malformed tree
	// (via TreeReader.SkipToNextBlank) and go on, instead of stopping
	// the run at the first TreeReader.Next error.
	ContinueOnCodecError bool `yaml:"continue_on_codec_error"`

	// RegexCacheSize bounds the number of compiled regexes the pattern
	// package keeps resident. Zero means "use the package default".
	RegexCacheSize int `yaml:"regex_cache_size"`

	// ScriptPaths lists script directories. It is loaded from the
	// document but not consulted by cmd/dep-tregex, which opens -script
	// exactly as given.
	ScriptPaths []string `yaml:"script_paths"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{ContinueOnCodecError: false, RegexCacheSize: 0}
}

// Load reads and parses a YAML configuration document from r.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and parses the configuration at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Load(f)
}
