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
	"fmt"
	"strings"
)

// TemplatedReporter renders a Conflict-cause DAG the way pub/cargo-style
// failure messages read: a numbered derivation where every external cause
// (NoVersions, FromDependency) is a leaf, every Conflict node is an
// internal derivation step, and a node referenced by more than one parent
// gets a footnote number instead of being repeated in full.
//
// It never mutates the Incompatibility it's given; numbering and line
// collection both work off a fresh visit each call.
type TemplatedReporter struct{}

// Report implements Reporter.
func (r *TemplatedReporter) Report(incomp *Incompatibility) string {
	if incomp == nil {
		return "no solution found"
	}

	refCount := make(map[*Incompatibility]int)
	countReferences(incomp, refCount, make(map[*Incompatibility]bool))

	numbers := make(map[*Incompatibility]int)
	var lines []string
	r.render(incomp, refCount, numbers, &lines, make(map[*Incompatibility]bool))

	if len(lines) == 0 {
		return "version solving has failed"
	}
	return strings.Join(lines, "\n")
}

// countReferences tallies how many distinct parents reference each
// Conflict node, so nodes reached more than once can be collapsed into a
// footnote instead of re-derived inline.
func countReferences(incomp *Incompatibility, refCount map[*Incompatibility]int, visited map[*Incompatibility]bool) {
	if incomp.Cause1 != nil {
		refCount[incomp.Cause1]++
	}
	if incomp.Cause2 != nil {
		refCount[incomp.Cause2]++
	}
	if visited[incomp] {
		return
	}
	visited[incomp] = true
	if incomp.Cause1 != nil {
		countReferences(incomp.Cause1, refCount, visited)
	}
	if incomp.Cause2 != nil {
		countReferences(incomp.Cause2, refCount, visited)
	}
}

func (r *TemplatedReporter) render(incomp *Incompatibility, refCount map[*Incompatibility]int, numbers map[*Incompatibility]int, lines *[]string, rendered map[*Incompatibility]bool) string {
	if n, ok := numbers[incomp]; ok {
		return fmt.Sprintf("(%d)", n)
	}

	label := ""
	if refCount[incomp] > 1 {
		n := len(numbers) + 1
		numbers[incomp] = n
		label = fmt.Sprintf(" (%d)", n)
	}

	if rendered[incomp] {
		return strings.TrimSpace(label)
	}
	rendered[incomp] = true

	switch incomp.Kind {
	case KindNoVersions, KindFromDependency:
		line := r.leafTemplate(incomp)
		*lines = append(*lines, line+label)
		return line

	case KindConflict:
		if incomp.Cause1 == nil || incomp.Cause2 == nil {
			line := incomp.String()
			*lines = append(*lines, line+label)
			return line
		}

		ref1 := r.render(incomp.Cause1, refCount, numbers, lines, rendered)
		ref2 := r.render(incomp.Cause2, refCount, numbers, lines, rendered)
		line := r.conflictTemplate(incomp, ref1, ref2)
		*lines = append(*lines, line+label)
		return line

	default:
		line := incomp.String()
		*lines = append(*lines, line+label)
		return line
	}
}

// leafTemplate renders an externally-caused (non-Conflict) incompatibility.
func (r *TemplatedReporter) leafTemplate(incomp *Incompatibility) string {
	switch incomp.Kind {
	case KindNoVersions:
		if len(incomp.Terms) > 0 {
			return fmt.Sprintf("no versions of %s satisfy the constraint", incomp.Terms[0])
		}
	case KindFromDependency:
		if len(incomp.Terms) == 2 {
			dep := incomp.Terms[1]
			if !dep.Positive {
				dep = dep.Negate()
			}
			return fmt.Sprintf("%s %s requires %s", incomp.Package.Value(), incomp.Version, dep)
		}
	}
	return incomp.String()
}

// conflictTemplate phrases a two-cause Conflict node by the number of
// terms it holds:
//
//   - no terms: "because <cause1> and <cause2>, version solving has failed".
//   - one term: "..., <term> is forbidden".
//   - two terms: "..., <first> requires <second>".
//   - more: "..., one of <terms> must be false".
//
// The shapes of the two causes are not inspected, so there is no separate
// "requires both A and B" or "A requires B which requires C" phrasing.
func (r *TemplatedReporter) conflictTemplate(incomp *Incompatibility, ref1, ref2 string) string {
	switch len(incomp.Terms) {
	case 0:
		return fmt.Sprintf("because %s and %s, version solving has failed", ref1, ref2)
	case 1:
		return fmt.Sprintf("because %s and %s, %s is forbidden", ref1, ref2, incomp.Terms[0])
	case 2:
		return fmt.Sprintf("because %s and %s, %s requires %s", ref1, ref2, incomp.Terms[0], incomp.Terms[1])
	default:
		var termStrs []string
		for _, t := range incomp.Terms {
			termStrs = append(termStrs, t.String())
		}
		return fmt.Sprintf("because %s and %s, one of %s must be false",
			ref1, ref2, strings.Join(termStrs, ", "))
	}
}

var _ Reporter = (*TemplatedReporter)(nil)
