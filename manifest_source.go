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

// Manifest is the TOML document a conforming embedder uses to declare its
// root requirements, mirroring how golang-dep's Gopkg.toml expresses a
// project's direct dependencies.
//
// Example document:
//
//	[[requires]]
//	name = "requests"
//	extras = ["security"]
//	constraint = ">=2.20,<3.0"
//
//	[[requires]]
//	name = "flask"
//	constraint = "==2.0.1"
type Manifest struct {
	Requires []ManifestRequirement `toml:"requires"`
}

// ManifestRequirement is one [[requires]] entry in a Manifest.
type ManifestRequirement struct {
	Name       string   `toml:"name"`
	Extras     []string `toml:"extras"`
	Constraint string   `toml:"constraint"`
}

// ParseManifest decodes a TOML root-requirements document.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(err, "decoding manifest TOML")
	}
	return m, nil
}

// RootSourceFromManifest builds a RootSource whose requirements are the
// manifest's [[requires]] entries, each expanded through
// ParsePyPIVersionRange so constraint strings follow PEP 440 ordering.
func RootSourceFromManifest(m Manifest) (*RootSource, error) {
	root := NewRootSource()
	for _, req := range m.Requires {
		set := FullVersionSet()
		if req.Constraint != "" {
			parsed, err := ParsePyPIVersionRange(req.Constraint)
			if err != nil {
				return nil, errors.Wrapf(err, "requirement %q", req.Name)
			}
			set = parsed
		}
		name := MakeNameWithExtras(req.Name, req.Extras)
		root.AddPackage(name, NewVersionSetCondition(set))
	}
	return root, nil
}
