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
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// RequirementLineSource is a Source whose dependency declarations are raw
// PEP 508 requirement-line strings, parsed and marker-filtered lazily on
// each GetDependencies call. This is the conforming PackageSource the
// requirement syntax in this module's external interface names: a real
// embedder's metadata-backed source would look much like this one, minus
// the in-memory storage.
type RequirementLineSource struct {
	// Versions maps a base package name (no extras) to its available
	// PyPIVersion strings.
	Versions map[string][]string

	// Requires maps a base package name and version string to the raw
	// PEP 508 requirement lines that version declares.
	Requires map[string]map[string][]string

	// Env is the marker environment requirement lines are evaluated
	// against; lines with no marker are always included.
	Env MarkerEnvironment
}

// NewRequirementLineSource returns an empty RequirementLineSource for the
// given marker environment.
func NewRequirementLineSource(env MarkerEnvironment) *RequirementLineSource {
	return &RequirementLineSource{
		Versions: make(map[string][]string),
		Requires: make(map[string]map[string][]string),
		Env:      env,
	}
}

// AddVersion registers a version of a package with the raw requirement
// lines its metadata declares.
func (s *RequirementLineSource) AddVersion(name, version string, requires []string) {
	s.Versions[name] = append(s.Versions[name], version)
	if s.Requires[name] == nil {
		s.Requires[name] = make(map[string][]string)
	}
	s.Requires[name][version] = requires
}

// GetVersions implements Source, resolving extras-suffixed names to their
// base package's version list.
func (s *RequirementLineSource) GetVersions(name Name) ([]Version, error) {
	base, _ := baseAndExtras(name)
	raw, ok := s.Versions[base]
	if !ok {
		return nil, &PackageNotFoundError{Package: name}
	}

	versions := make([]Version, 0, len(raw))
	for _, v := range raw {
		parsed, err := ParsePyPIVersion(v)
		if err != nil {
			return nil, errors.Wrapf(err, "package %s version %q", base, v)
		}
		versions = append(versions, parsed)
	}
	slices.SortFunc(versions, func(a, b Version) int { return a.Sort(b) })
	return versions, nil
}

// GetDependencies implements Source: it parses every requirement line
// declared for this base package and version, drops lines whose marker
// evaluates to false against Env, and additionally exposes each requested
// extra's own requirement lines (looked up under the synthetic
// "<name>:extra:<extra>" key ExtrasSource expects), so this type can be
// used either directly or wrapped in an ExtrasSource.
func (s *RequirementLineSource) GetDependencies(name Name, version Version) ([]Term, error) {
	base, extras := baseAndExtras(name)
	extraOnly := false
	if pkg, extra, found := strings.Cut(base, ":extra:"); found {
		base, extras, extraOnly = pkg, []string{extra}, true
	}
	versionsByName, ok := s.Requires[base]
	if !ok {
		return nil, &PackageNotFoundError{Package: name}
	}

	lines, ok := versionsByName[version.String()]
	if !ok {
		return nil, &PackageVersionNotFoundError{Package: name, Version: version}
	}

	var terms []Term
	if !extraOnly {
		var err error
		terms, err = s.termsForLines(lines, "")
		if err != nil {
			return nil, err
		}
	}

	for _, extra := range extras {
		extraTerms, err := s.termsForLines(lines, extra)
		if err != nil {
			return nil, err
		}
		terms = append(terms, extraTerms...)
	}

	return terms, nil
}

func (s *RequirementLineSource) termsForLines(lines []string, activeExtra string) ([]Term, error) {
	env := s.Env
	env.Extra = activeExtra

	var terms []Term
	for _, line := range lines {
		req, err := ParseRequirementLine(line)
		if err != nil {
			if errors.Is(err, ErrDirectURLNotSupported) {
				continue
			}
			return nil, err
		}

		// requirement lines with no marker apply unconditionally; lines
		// scoped to an extra are only included while evaluating that
		// extra's own dependency set.
		if req.Marker == "" && activeExtra != "" {
			continue
		}
		if req.Marker != "" {
			ok, err := EvaluateMarker(req.Marker, env)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		term, err := req.Term()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

var _ Source = (*RequirementLineSource)(nil)
