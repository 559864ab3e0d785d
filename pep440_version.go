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
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/pkg/errors"
)

// PyPIVersion implements Version using full PEP 440 ordering: epoch,
// release segments, pre/post/dev markers are all significant; the local
// version segment is carried for display but ignored by Sort, matching
// PEP 440's definition of public version precedence.
type PyPIVersion struct {
	raw    string
	parsed pep440.Version
}

// ParsePyPIVersion parses s as a PEP 440 version string.
func ParsePyPIVersion(s string) (PyPIVersion, error) {
	parsed, err := pep440.Parse(s)
	if err != nil {
		return PyPIVersion{}, errors.Wrapf(err, "parsing PEP 440 version %q", s)
	}
	return PyPIVersion{raw: s, parsed: parsed}, nil
}

// MustParsePyPIVersion is ParsePyPIVersion for callers constructing literal
// versions (tests, fixtures) that are confident the string is well-formed.
func MustParsePyPIVersion(s string) PyPIVersion {
	v, err := ParsePyPIVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the original, un-normalized version text.
func (v PyPIVersion) String() string {
	return v.raw
}

// Sort orders two versions per PEP 440. OpaqueVersion values are never
// equal to a PyPIVersion under Sort; comparing against any other Version
// implementation falls back to string comparison, matching SimpleVersion's
// existing fallback convention elsewhere in this package.
func (v PyPIVersion) Sort(other Version) int {
	switch o := other.(type) {
	case PyPIVersion:
		return v.parsed.Compare(o.parsed)
	case OpaqueVersion:
		return 1
	default:
		if v.raw == other.String() {
			return 0
		}
		if v.raw < other.String() {
			return -1
		}
		return 1
	}
}

var _ Version = PyPIVersion{}

// OpaqueVersion represents a version pin this resolver cannot order, such
// as a VCS commit or branch reference. Per the data model, two opaque
// versions compare equal only when their pin strings are identical;
// otherwise they are incomparable, which this implementation renders as a
// fixed non-zero order so sort functions still see a valid total order.
type OpaqueVersion string

// String returns the raw pin text (e.g. a git ref or URL fragment).
func (v OpaqueVersion) String() string {
	return string(v)
}

// Sort returns 0 only when other is the identical pin string; any other
// comparison, including against another distinct OpaqueVersion, returns a
// fixed non-zero order rather than claiming a real ordering exists.
func (v OpaqueVersion) Sort(other Version) int {
	if o, ok := other.(OpaqueVersion); ok {
		if v == o {
			return 0
		}
		if v < o {
			return -1
		}
		return 1
	}
	return -1
}

var _ Version = OpaqueVersion("")
