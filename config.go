// Copyright 2025 Contriboss
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

package pubgrub

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config is solver tuning read from a small TOML document, so an embedder
// can adjust resolution behavior without recompiling. MaxSteps,
// TrackIncompatibilities and Debug map onto SolverOptions through Options;
// IncludePreReleases is decoded too, but Options does not read it (the
// pre-release filter is PyPISource's IncludePreReleases field).
type Config struct {
	MaxSteps               int  `toml:"max_steps"`
	TrackIncompatibilities bool `toml:"track_incompatibilities"`
	IncludePreReleases     bool `toml:"include_prereleases"`
	Debug                  bool `toml:"debug"`
}

// ParseConfig decodes a TOML solver-configuration document.
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{MaxSteps: defaultMaxSteps}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config TOML")
	}
	return cfg, nil
}

// Options converts Config into the SolverOptions functional options this
// package's NewSolverWithOptions accepts.
func (c Config) Options() []SolverOption {
	opts := []SolverOption{
		WithMaxSteps(c.MaxSteps),
		WithIncompatibilityTracking(c.TrackIncompatibilities),
	}
	if c.Debug {
		opts = append(opts, WithLogger(NewLogger()))
	}
	return opts
}
