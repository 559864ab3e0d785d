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

func TestParsePyPIVersionRangeBasics(t *testing.T) {
	set, err := ParsePyPIVersionRange(">=1.0,<2.0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	in, _ := ParsePyPIVersion("1.5.0")
	below, _ := ParsePyPIVersion("0.9.0")
	above, _ := ParsePyPIVersion("2.0.0")

	if !set.Contains(in) {
		t.Errorf("expected %s to be contained", in)
	}
	if set.Contains(below) {
		t.Errorf("expected %s to be excluded", below)
	}
	if set.Contains(above) {
		t.Errorf("expected %s to be excluded", above)
	}
}

func TestParsePyPIVersionRangeEquals(t *testing.T) {
	set, err := ParsePyPIVersionRange("==1.2.3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	exact, _ := ParsePyPIVersion("1.2.3")
	other, _ := ParsePyPIVersion("1.2.4")

	if !set.Contains(exact) {
		t.Error("expected exact version to be contained")
	}
	if set.Contains(other) {
		t.Error("expected a different version to be excluded")
	}
}

func TestParsePyPIVersionRangeNotEqual(t *testing.T) {
	set, err := ParsePyPIVersionRange("!=1.2.3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	excluded, _ := ParsePyPIVersion("1.2.3")
	other, _ := ParsePyPIVersion("1.2.4")

	if set.Contains(excluded) {
		t.Error("expected excluded version to not be contained")
	}
	if !set.Contains(other) {
		t.Error("expected a different version to be contained")
	}
}

func TestParsePyPIVersionRangeOr(t *testing.T) {
	set, err := ParsePyPIVersionRange("<1.0 || >=2.0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	low, _ := ParsePyPIVersion("0.5.0")
	mid, _ := ParsePyPIVersion("1.5.0")
	high, _ := ParsePyPIVersion("2.5.0")

	if !set.Contains(low) {
		t.Error("expected low version to be contained")
	}
	if set.Contains(mid) {
		t.Error("expected mid version to be excluded")
	}
	if !set.Contains(high) {
		t.Error("expected high version to be contained")
	}
}

func TestParsePyPIVersionRangeWildcard(t *testing.T) {
	set, err := ParsePyPIVersionRange("*")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if set.IsEmpty() {
		t.Error("expected a wildcard range to be the full set")
	}
}

func TestParsePyPIVersionRangeCompatibleRelease(t *testing.T) {
	set, err := ParsePyPIVersionRange("~=1.4")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	in, _ := ParsePyPIVersion("1.4.2")
	below, _ := ParsePyPIVersion("1.3.0")
	above, _ := ParsePyPIVersion("2.0.0")

	if !set.Contains(in) {
		t.Error("expected a version satisfying the lower bound to be contained")
	}
	if set.Contains(below) {
		t.Error("expected a version below the lower bound to be excluded")
	}
	if set.Contains(above) {
		t.Error("expected ~=1.4 to exclude 2.0.0 (compatible release upper bound)")
	}
}

func TestParsePyPIVersionRangeCompatibleReleaseThreeSegments(t *testing.T) {
	// ~=2.2.3 means >=2.2.3,<2.3.0: only the last release segment is free.
	set, err := ParsePyPIVersionRange("~=2.2.3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	in, _ := ParsePyPIVersion("2.2.9")
	below, _ := ParsePyPIVersion("2.2.2")
	above, _ := ParsePyPIVersion("2.3.0")

	if !set.Contains(in) {
		t.Error("expected 2.2.9 to satisfy ~=2.2.3")
	}
	if set.Contains(below) {
		t.Error("expected 2.2.2 to be excluded by ~=2.2.3's lower bound")
	}
	if set.Contains(above) {
		t.Error("expected 2.3.0 to be excluded by ~=2.2.3's upper bound")
	}
}

func TestParsePyPIVersionRangeCompatibleReleaseRequiresTwoSegments(t *testing.T) {
	if _, err := ParsePyPIVersionRange("~=2"); err == nil {
		t.Error("expected ~=2 (a single release segment) to be rejected")
	}
}
