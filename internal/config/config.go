// This file is part of hasm15 - https://github.com/arbora/hasm15
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

// Package config loads the optional TOML configuration file accepted by
// cmd/hasm. Absence of a config file is not an error: every field has a
// default matching the architecture's fixed behaviour.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the handful of knobs that are legitimately
// deployment-specific rather than fixed by the machine's architecture.
type Config struct {
	// StartAddress is the instruction counter value both passes start
	// from. Defaults to 100.
	StartAddress int `toml:"start_address"`
	// MaxErrors caps how many pass-1 diagnostics accumulate before new
	// ones are dropped. Defaults to 10.
	MaxErrors int `toml:"max_errors"`
	// WordBits is the machine word width in bits, used to mask every
	// emitted value. Defaults to 15.
	WordBits int `toml:"word_bits"`
}

// Default returns the configuration matching the architecture's documented
// defaults.
func Default() Config {
	return Config{StartAddress: 100, MaxErrors: 10, WordBits: 15}
}

// Load reads and decodes the TOML file at path, applying it on top of
// Default(). A path of "" returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config failed")
	}
	defer f.Close()
	if _, err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config failed")
	}
	return cfg, nil
}
