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

import "regexp"

// preReleaseMarker matches the PEP 440 pre/dev-release suffixes (a1, b2,
// rc1, .dev0, and their aliases) at the end of a version's text. Filtering on
// the rendered text rather than a parsed field keeps this source decoupled
// from the underlying PEP 440 library's internal representation.
var preReleaseMarker = regexp.MustCompile(`(?i)(a|b|rc|dev|alpha|beta|pre|preview)\d*$|\.dev\d*$`)

// PyPISource wraps a Source, filtering out pre-release versions unless
// IncludePreReleases is set. Per the data model, pre-release visibility is
// a source-level policy, not something the version algebra or the solver
// itself is aware of: the solver only ever sees the filtered list.
type PyPISource struct {
	Base               Source
	IncludePreReleases bool
}

// GetVersions returns the base source's versions, dropping pre-releases
// unless IncludePreReleases is set.
func (s PyPISource) GetVersions(name Name) ([]Version, error) {
	versions, err := s.Base.GetVersions(name)
	if err != nil {
		return nil, err
	}
	if s.IncludePreReleases {
		return versions, nil
	}

	filtered := make([]Version, 0, len(versions))
	for _, v := range versions {
		if !isPreRelease(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// GetDependencies delegates to the base source unchanged: pre-release
// filtering only narrows which versions are offered as decision
// candidates, not what a chosen version depends on.
func (s PyPISource) GetDependencies(name Name, version Version) ([]Term, error) {
	return s.Base.GetDependencies(name, version)
}

func isPreRelease(v Version) bool {
	return preReleaseMarker.MatchString(v.String())
}

var _ Source = PyPISource{}
