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

import "testing"

func TestPyPIVersionOrdering(t *testing.T) {
	tests := []struct {
		lo, hi string
	}{
		{"1.0.0", "1.0.1"},
		{"1.0.0a1", "1.0.0"},
		{"1.0.0.dev0", "1.0.0a1"},
		{"1.0.0", "1.0.0.post1"},
		{"1.0", "2.0"},
		{"1!1.0.0", "2!0.0.1"},
	}

	for _, tt := range tests {
		lo, err := ParsePyPIVersion(tt.lo)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.lo, err)
		}
		hi, err := ParsePyPIVersion(tt.hi)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.hi, err)
		}
		if lo.Sort(hi) >= 0 {
			t.Errorf("expected %q < %q", tt.lo, tt.hi)
		}
		if hi.Sort(lo) <= 0 {
			t.Errorf("expected %q > %q", tt.hi, tt.lo)
		}
	}
}

func TestPyPIVersionEqual(t *testing.T) {
	a, _ := ParsePyPIVersion("1.0.0")
	b, _ := ParsePyPIVersion("1.0.0")
	if a.Sort(b) != 0 {
		t.Errorf("expected equal versions to sort as 0, got %d", a.Sort(b))
	}
}

func TestParsePyPIVersionInvalid(t *testing.T) {
	if _, err := ParsePyPIVersion("not-a-version!!"); err == nil {
		t.Error("expected an error parsing an invalid version")
	}
}

func TestOpaqueVersionOrdering(t *testing.T) {
	a := OpaqueVersion("git+https://example.com/repo@abc123")
	b := OpaqueVersion("git+https://example.com/repo@abc123")
	c := OpaqueVersion("git+https://example.com/repo@def456")

	if a.Sort(b) != 0 {
		t.Error("identical opaque pins should compare equal")
	}
	if a.Sort(c) == 0 {
		t.Error("distinct opaque pins should not compare equal")
	}

	pypi, _ := ParsePyPIVersion("1.0.0")
	if a.Sort(pypi) == 0 {
		t.Error("an opaque version should never compare equal to a PyPI version")
	}
}
