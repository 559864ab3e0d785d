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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePyPIVersionRange parses a PEP 508 version-specifier set (e.g.
// ">=1.0,<2.0" or "==1.5.*") into a VersionSet over PyPIVersion, the same
// comma/pipe grammar ParseVersionRange uses for SemanticVersion, but
// resolving each bound through the PEP 440 parser instead.
func ParsePyPIVersionRange(s string) (VersionSet, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return FullVersionSet(), nil
	}

	orParts := strings.Split(s, "||")
	result := EmptyVersionSet()

	for _, orPart := range orParts {
		orPart = strings.TrimSpace(orPart)
		if orPart == "" {
			return nil, errors.Errorf("invalid empty range in %q", s)
		}

		current := FullVersionSet()
		for _, andPart := range strings.Split(orPart, ",") {
			token := strings.TrimSpace(andPart)
			if token == "" {
				return nil, errors.Errorf("invalid empty constraint in %q", orPart)
			}
			set, err := parsePyPIRangeExpression(token)
			if err != nil {
				return nil, err
			}
			current = current.Intersection(set)
			if current.IsEmpty() {
				break
			}
		}

		result = result.Union(current)
	}

	return result, nil
}

func parsePyPIRangeExpression(expr string) (VersionSet, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("empty range expression")
	}

	operators := []struct {
		prefix  string
		builder func(raw string, v PyPIVersion) (VersionSet, error)
	}{
		{">=", func(_ string, v PyPIVersion) (VersionSet, error) { return NewLowerBoundVersionSet(v, true), nil }},
		{">", func(_ string, v PyPIVersion) (VersionSet, error) { return NewLowerBoundVersionSet(v, false), nil }},
		{"<=", func(_ string, v PyPIVersion) (VersionSet, error) { return NewUpperBoundVersionSet(v, true), nil }},
		{"<", func(_ string, v PyPIVersion) (VersionSet, error) { return NewUpperBoundVersionSet(v, false), nil }},
		{"===", func(_ string, v PyPIVersion) (VersionSet, error) { return NewVersionRangeSet(v, true, v, true), nil }},
		{"==", func(_ string, v PyPIVersion) (VersionSet, error) { return NewVersionRangeSet(v, true, v, true), nil }},
		{"!=", func(_ string, v PyPIVersion) (VersionSet, error) { return NewVersionRangeSet(v, true, v, true).Complement(), nil }},
		// ~=V.N ("compatible release") is >=V.N, ==V.* with the release's
		// last segment dropped: ~=2.2 means >=2.2,<3.0 and ~=2.2.3 means
		// >=2.2.3,<2.3.0.
		{"~=", func(raw string, v PyPIVersion) (VersionSet, error) {
			upper, err := compatibleReleaseUpperBound(raw)
			if err != nil {
				return nil, err
			}
			return NewVersionRangeSet(v, true, upper, false), nil
		}},
	}

	for _, op := range operators {
		if strings.HasPrefix(expr, op.prefix) {
			rest := strings.TrimSpace(expr[len(op.prefix):])
			raw := strings.TrimSpace(strings.TrimSuffix(rest, ".*"))
			v, err := ParsePyPIVersion(raw)
			if err != nil {
				return nil, err
			}
			if (op.prefix == "==" || op.prefix == "!=") && strings.HasSuffix(rest, ".*") {
				// ==V.* is every release starting with V: >=V, <V with its
				// last segment incremented (==1.5.* is >=1.5,<1.6).
				upper, err := compatibleReleaseUpperBound(raw + ".0")
				if err != nil {
					return nil, err
				}
				prefixSet := NewVersionRangeSet(v, true, upper, false)
				if op.prefix == "!=" {
					return prefixSet.Complement(), nil
				}
				return prefixSet, nil
			}
			return op.builder(raw, v)
		}
	}

	v, err := ParsePyPIVersion(expr)
	if err != nil {
		return nil, err
	}
	return NewVersionRangeSet(v, true, v, true), nil
}

// compatibleReleaseUpperBound computes the exclusive upper bound for PEP
// 440's ~= operator from the raw release text: drop the release's last
// segment and increment the new last segment, e.g. "2.2.3" -> "2.3.0"
// (exclusive), "2.2" -> "3.0" (exclusive). Ignores any leading epoch
// ("N!") and any pre/post/dev/local suffix, since ~= only constrains the
// release segment itself.
func compatibleReleaseUpperBound(raw string) (PyPIVersion, error) {
	release := raw
	if idx := strings.IndexByte(release, '!'); idx >= 0 {
		release = release[idx+1:]
	}
	for i, r := range release {
		if !(r == '.' || (r >= '0' && r <= '9')) {
			release = release[:i]
			break
		}
	}
	release = strings.TrimSuffix(release, ".")

	segments := strings.Split(release, ".")
	if len(segments) < 2 || segments[0] == "" {
		return PyPIVersion{}, errors.Errorf("~= requires a release with at least two segments, got %q", raw)
	}
	segments = segments[:len(segments)-1]

	last, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil {
		return PyPIVersion{}, errors.Errorf("invalid release segment in %q: %v", raw, err)
	}
	segments[len(segments)-1] = strconv.Itoa(last + 1)

	return ParsePyPIVersion(strings.Join(segments, "."))
}
