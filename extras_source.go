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

// ExtrasSource wraps a Source so that an extras-suffixed Name (produced by
// MakeNameWithExtras, e.g. "requests[socks,security]") resolves to the
// same versions as its base package, and depends on both the base
// package's ordinary dependencies and every requested extra's additional
// dependencies.
//
// The underlying Source is expected to expose each extra's additional
// requirements under the synthetic package name "<base>:extra:<extra>",
// a convention a PEP 508-driven PackageSource can populate directly from
// a distribution's metadata (each extra's own requires-dist list).
type ExtrasSource struct {
	Base Source
}

// GetVersions delegates to the base package, regardless of requested extras,
// since extras never change which versions of a distribution exist.
func (s ExtrasSource) GetVersions(name Name) ([]Version, error) {
	base, _ := baseAndExtras(name)
	return s.Base.GetVersions(MakeName(base))
}

// GetDependencies returns the base package's own dependencies plus each
// requested extra's additional dependencies, deduplicated by the combined
// package-name-plus-condition-string they target.
func (s ExtrasSource) GetDependencies(name Name, version Version) ([]Term, error) {
	base, extras := baseAndExtras(name)

	deps, err := s.Base.GetDependencies(MakeName(base), version)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return deps, nil
	}

	result := make([]Term, 0, len(deps))
	seen := make(map[string]bool)
	add := func(terms []Term) {
		for _, term := range terms {
			if key := term.String(); !seen[key] {
				seen[key] = true
				result = append(result, term)
			}
		}
	}
	add(deps)
	for _, extra := range extras {
		extraTerms, err := s.Base.GetDependencies(MakeName(base+":extra:"+extra), version)
		if err != nil {
			if _, ok := err.(*PackageNotFoundError); ok {
				continue
			}
			if _, ok := err.(*PackageVersionNotFoundError); ok {
				continue
			}
			return nil, err
		}
		add(extraTerms)
	}

	return result, nil
}

var _ Source = ExtrasSource{}
