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
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// maxProbeWorkers bounds how many packages' versions_for/dependencies_for
// are probed concurrently while picking the next decision candidate.
func maxProbeWorkers() int {
	n := runtime.NumCPU()
	if n > 8 {
		return 8
	}
	if n < 1 {
		return 1
	}
	return n
}

// candidateProbe captures what selectNextPackage learns about one pending
// package: how many versions currently satisfy its constraints, and how
// many dependencies its newest matching version declares. Probing is
// side-effect-free and idempotent, so it is safe to run across a bounded
// worker pool and fold the results back in once all probes finish.
type candidateProbe struct {
	name         Name
	versionCount int
	depCount     int
}

// selectNextPackage picks the pending package with the fewest viable
// versions, breaking ties by the dependency count of its newest matching
// version and then by pending order. Fewer options means fewer branches
// for the solver to explore, so deciding it first tends to surface
// conflicts earlier.
func (st *solverState) selectNextPackage() (Name, bool, error) {
	pending := st.partial.pendingPackages()
	if len(pending) == 0 {
		return EmptyName(), false, nil
	}
	if len(pending) == 1 {
		return pending[0], true, nil
	}

	probes := make([]candidateProbe, len(pending))

	g := new(errgroup.Group)
	g.SetLimit(maxProbeWorkers())

	for i, name := range pending {
		i, name := i, name
		g.Go(func() error {
			probe, err := st.probeCandidate(name)
			if err != nil {
				return err
			}
			probes[i] = probe
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return EmptyName(), false, err
	}

	best := 0
	for i := 1; i < len(probes); i++ {
		if less(probes[i], probes[best]) {
			best = i
		}
	}

	return probes[best].name, true, nil
}

// probeCandidate computes the (version_count, dep_count) pair for a single
// pending package without mutating solver state.
func (st *solverState) probeCandidate(name Name) (candidateProbe, error) {
	allowed := st.partial.allowedSet(name)

	versions, err := st.source.GetVersions(name)
	if err != nil {
		var pkgErr *PackageNotFoundError
		var verErr *PackageVersionNotFoundError
		if errors.As(err, &pkgErr) || errors.As(err, &verErr) {
			return candidateProbe{name: name}, nil
		}
		return candidateProbe{}, err
	}

	var count int
	var newest Version
	for _, ver := range versions {
		if !allowed.Contains(ver) {
			continue
		}
		count++
		if newest == nil || ver.Sort(newest) > 0 {
			newest = ver
		}
	}

	if newest == nil {
		return candidateProbe{name: name, versionCount: count}, nil
	}

	deps, err := st.source.GetDependencies(name, newest)
	if err != nil {
		// A source that cannot report dependencies for its own advertised
		// version is surprising but not fatal to candidate selection: fall
		// back to treating it as having no declared dependencies.
		return candidateProbe{name: name, versionCount: count}, nil
	}

	return candidateProbe{name: name, versionCount: count, depCount: len(deps)}, nil
}

// less orders two candidate probes by fewest versions, then fewest
// dependencies, both ascending.
func less(a, b candidateProbe) bool {
	if a.versionCount != b.versionCount {
		return a.versionCount < b.versionCount
	}
	return a.depCount < b.depCount
}
