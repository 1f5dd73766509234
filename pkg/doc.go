// Package pkg provides the core libraries for the untangle puzzle engine.
//
// # Overview
//
// Untangle generates planar graphs, tangles them into a crossing circular
// layout, and lets a host interface move vertices until no two edges cross.
// The pkg directory is organized into five areas:
//
//  1. [geom] - Exact rational-coordinate geometry (the crossing predicate)
//  2. [graph] - Canonical edges and the reference-counted edge structure
//  3. [generator] - Random planar puzzle construction
//  4. [puzzle] - Game state, move engine, and the textual encodings
//  5. [config], [errors] - Settings and structured error codes
//
// # Architecture
//
// The typical data flow:
//
//	generator.Generate (planar graph + shuffled labels)
//	         ↓
//	    description + solution strings
//	         ↓
//	    [puzzle] package (state, moves, completion)
//	         ↓
//	    edge-list / move-string / JSON layout output
//
// # Quick Start
//
// Generate a puzzle and replay its recorded solution:
//
//	import (
//	    "github.com/buelent/untangle/pkg/generator"
//	    "github.com/buelent/untangle/pkg/puzzle"
//	)
//
//	// 1. Generate a 10-vertex puzzle
//	res, _ := generator.Generate(puzzle.Params{N: 10}, generator.Options{Seed: 42})
//
//	// 2. Build the starting state (tangled circular layout)
//	st, _ := puzzle.New(nil, res.Params, res.Desc)
//	defer st.Release()
//
//	// 3. Replay the recorded solution
//	solved, _ := st.Solve(res.Aux)
//	defer solved.Release()
//	fmt.Println(solved.Completed) // true
//
// # Main Packages
//
// [geom] - Rational 2D points and the exact segment-intersection predicate.
// All comparisons run in integer arithmetic, so collinear overlaps and
// endpoint touches are classified without floating-point error.
//
// [graph] - Undirected canonical edges in an ordered set, wrapped in a
// reference-counted Graph shared between puzzle states.
//
// [generator] - Three-stage puzzle construction: uniform distinct grid
// points, greedy planar edge growth favoring low-degree vertices, and a
// label shuffle forced to produce at least one crossing on the circle.
// Deterministic for a given (n, seed) pair.
//
// [puzzle] - Parameters, immutable-graph states, the move grammar
// (S / P<i>:<x>,<y>/<d>), completion detection with a sticky win flag,
// description validation, and JSON layout export.
//
// [config] - Tuning constants (max degree, point density, tile size, drag
// threshold, shuffle cap, presets) with TOML file loading.
//
// [errors] - Structured error codes shared by the core and the CLI.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/geom/...     # Specific package
//	go test -run Example       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/buelent/untangle/pkg/geom
// [graph]: https://pkg.go.dev/github.com/buelent/untangle/pkg/graph
// [generator]: https://pkg.go.dev/github.com/buelent/untangle/pkg/generator
// [puzzle]: https://pkg.go.dev/github.com/buelent/untangle/pkg/puzzle
// [config]: https://pkg.go.dev/github.com/buelent/untangle/pkg/config
// [errors]: https://pkg.go.dev/github.com/buelent/untangle/pkg/errors
package pkg
