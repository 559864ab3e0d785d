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
)

// Extras model a package requested with optional feature sets (PEP 508's
// `name[extra1,extra2]` syntax) as if it were a distinct package: a
// positive term for "foo[bar]" and one for "foo[baz]" both constrain the
// same underlying distribution but are tracked as separate PackageIds so
// the solver can reason about them independently, and their intersection
// (both extras requested together) unions the requested extras.
//
// Rather than threading a new PackageId type through every call site
// typed Name today, extras are encoded directly into the interned Name
// string as a canonical, sorted bracket suffix: "foo" vs "foo[bar,baz]".
// Name equality (already a fast pointer comparison via unique.Handle)
// then doubles as PackageId equality.

// MakeNameWithExtras builds the Name for a base package requested with the
// given extras. An empty extras slice is equivalent to MakeName(base).
func MakeNameWithExtras(base string, extras []string) Name {
	return MakeName(encodeExtras(base, extras))
}

// baseAndExtras splits an encoded Name's string value back into its base
// package name and sorted extras list.
func baseAndExtras(name Name) (string, []string) {
	s := name.Value()
	open := strings.IndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return s, nil
	}
	base := s[:open]
	inner := s[open+1 : len(s)-1]
	if inner == "" {
		return base, nil
	}
	return base, strings.Split(inner, ",")
}

// encodeExtras renders base and a canonicalized (deduped, sorted) extras
// list as a single string suitable for interning via MakeName.
func encodeExtras(base string, extras []string) string {
	if len(extras) == 0 {
		return base
	}
	clean := slices.Clone(extras)
	slices.Sort(clean)
	clean = slices.Compact(clean)
	return base + "[" + strings.Join(clean, ",") + "]"
}

// unionPackageNames returns the Name representing the union of the extras
// requested by a and b, provided they share the same base package. This is
// used when two positive terms for the same distribution, requesting
// different extras, are intersected: the result must require every extra
// either term asked for.
func unionPackageNames(a, b Name) Name {
	baseA, extrasA := baseAndExtras(a)
	baseB, extrasB := baseAndExtras(b)
	if baseA != baseB {
		// Different base packages: nothing to union, keep the first
		// name. Callers are expected to only invoke this for terms that
		// already share a base, per the term-merging invariant.
		return a
	}
	merged := append(slices.Clone(extrasA), extrasB...)
	return MakeNameWithExtras(baseA, merged)
}

// sharesBaseWith reports whether a and b refer to the same underlying
// distribution, ignoring any extras suffix.
func sharesBaseWith(a, b Name) bool {
	baseA, _ := baseAndExtras(a)
	baseB, _ := baseAndExtras(b)
	return baseA == baseB
}
