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

func TestMakeNameWithExtrasNoExtras(t *testing.T) {
	name := MakeNameWithExtras("requests", nil)
	if name != MakeName("requests") {
		t.Errorf("expected bare name, got %s", name.Value())
	}
}

func TestMakeNameWithExtrasSortsAndDedupes(t *testing.T) {
	a := MakeNameWithExtras("requests", []string{"security", "socks"})
	b := MakeNameWithExtras("requests", []string{"socks", "security", "socks"})

	if a != b {
		t.Errorf("expected equivalent extras sets to intern to the same name, got %s vs %s", a.Value(), b.Value())
	}
	if a.Value() != "requests[security,socks]" {
		t.Errorf("expected canonical sorted form, got %s", a.Value())
	}
}

func TestBaseAndExtrasRoundTrip(t *testing.T) {
	name := MakeNameWithExtras("requests", []string{"security", "socks"})
	base, extras := baseAndExtras(name)

	if base != "requests" {
		t.Errorf("expected base 'requests', got %q", base)
	}
	if len(extras) != 2 || extras[0] != "security" || extras[1] != "socks" {
		t.Errorf("expected [security socks], got %v", extras)
	}
}

func TestBaseAndExtrasNoBrackets(t *testing.T) {
	base, extras := baseAndExtras(MakeName("flask"))
	if base != "flask" {
		t.Errorf("expected base 'flask', got %q", base)
	}
	if extras != nil {
		t.Errorf("expected no extras, got %v", extras)
	}
}

func TestUnionPackageNames(t *testing.T) {
	a := MakeNameWithExtras("requests", []string{"security"})
	b := MakeNameWithExtras("requests", []string{"socks"})

	union := unionPackageNames(a, b)
	base, extras := baseAndExtras(union)

	if base != "requests" {
		t.Errorf("expected base 'requests', got %q", base)
	}
	if len(extras) != 2 || extras[0] != "security" || extras[1] != "socks" {
		t.Errorf("expected union [security socks], got %v", extras)
	}
}

func TestUnionPackageNamesDifferentBases(t *testing.T) {
	a := MakeName("requests")
	b := MakeName("flask")

	if got := unionPackageNames(a, b); got != a {
		t.Errorf("expected union of mismatched bases to return the first name unchanged, got %s", got.Value())
	}
}

func TestSharesBaseWith(t *testing.T) {
	a := MakeNameWithExtras("requests", []string{"security"})
	b := MakeName("requests")
	c := MakeName("flask")

	if !sharesBaseWith(a, b) {
		t.Error("expected requests[security] and requests to share a base")
	}
	if sharesBaseWith(a, c) {
		t.Error("expected requests[security] and flask to not share a base")
	}
}
