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
)

// Example demonstrating a dependency on a package the source has never
// heard of.
func ExampleSolver_missingDependency() {
	source := &InMemorySource{}
	source.AddPackage(MakeName("webapp"), SimpleVersion("1.0.0"), []Term{
		NewTerm(MakeName("widget"), EqualsCondition{Version: SimpleVersion("1.0.0")}),
	})
	// Note: "widget" is never registered with the source.

	root := NewRootSource()
	root.AddPackage(MakeName("webapp"), EqualsCondition{Version: SimpleVersion("1.0.0")})

	solver := NewSolver(root, source)
	_, err := solver.Solve(root.Term())

	if err != nil {
		fmt.Printf("Error type: %T\n", err)
		if _, ok := err.(ErrNoSolutionFound); ok {
			fmt.Println("webapp could not be resolved because widget is unavailable")
		}
	}

	// Output:
	// Error type: pubgrub.ErrNoSolutionFound
	// webapp could not be resolved because widget is unavailable
}

// Example demonstrating a version conflict reported through the templated,
// footnoted reporter instead of the default nested "Because ..." tree.
func ExampleNoSolutionError_templatedReporter() {
	source := &InMemorySource{}
	source.AddPackage(MakeName("dropdown"), SimpleVersion("2.0.0"), []Term{
		NewTerm(MakeName("icons"), EqualsCondition{Version: SimpleVersion("2.0.0")}),
	})
	source.AddPackage(MakeName("icons"), SimpleVersion("1.0.0"), nil)
	// Note: icons 2.0.0 doesn't exist.

	root := NewRootSource()
	root.AddPackage(MakeName("dropdown"), EqualsCondition{Version: SimpleVersion("2.0.0")})

	solver := NewSolver(root, source).EnableIncompatibilityTracking()
	_, err := solver.Solve(root.Term())

	if nsErr, ok := err.(*NoSolutionError); ok {
		customErr := nsErr.WithReporter(&TemplatedReporter{})
		fmt.Println("got a derivation:", len(customErr.Error()) > 0)
	}

	// Output:
	// got a derivation: true
}

// Example demonstrating a successful resolution across a small dependency
// graph, printing the chosen versions.
func ExampleSolver_successfulResolution() {
	source := &InMemorySource{}
	source.AddPackage(MakeName("webapp"), SimpleVersion("1.0.0"), []Term{
		NewTerm(MakeName("widget"), EqualsCondition{Version: SimpleVersion("1.0.0")}),
	})
	source.AddPackage(MakeName("widget"), SimpleVersion("1.0.0"), nil)

	root := NewRootSource()
	root.AddPackage(MakeName("webapp"), EqualsCondition{Version: SimpleVersion("1.0.0")})

	solver := NewSolver(root, source)
	solution, err := solver.Solve(root.Term())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for _, nv := range solution {
		if nv.Name != MakeName("$$root") {
			fmt.Printf("%s = %s\n", nv.Name.Value(), nv.Version)
		}
	}

	// Output:
	// webapp = 1.0.0
	// widget = 1.0.0
}
