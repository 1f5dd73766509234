// Package generator constructs random untangle puzzles.
//
// Generation proceeds in three stages. First, n distinct grid points are
// drawn uniformly from a square just roomy enough for the configured
// density. Second, edges are added greedily: always to the current
// lowest-degree vertex, preferring near targets, and only when the new
// segment neither passes through another point nor crosses an existing
// edge - the result is planar by construction. Third, vertex labels are
// re-drawn at random until the graph, laid out on the reference circle,
// contains at least one crossing, so the puzzle never starts solved.
//
// Generation is deterministic for a given (n, seed) pair.
package generator

import (
	"math/rand/v2"
	"slices"

	"github.com/buelent/untangle/pkg/config"
	"github.com/buelent/untangle/pkg/geom"
	"github.com/buelent/untangle/pkg/graph"
	"github.com/buelent/untangle/pkg/puzzle"
)

// Options control a generation run.
type Options struct {
	// Seed makes the run reproducible. Equal (params, seed, config)
	// always yield an identical result.
	Seed uint64

	// Config supplies the tuning constants; nil means config.Default().
	Config *config.Config

	// Logf receives debug progress lines when non-nil.
	Logf func(format string, args ...any)
}

// Result is a generated puzzle: the description string to hand to
// puzzle.New, and the auxiliary solution string that replays the solved
// layout the graph was built on.
type Result struct {
	Params puzzle.Params
	Desc   string
	Aux    string

	// Side is the coordinate-system extent the puzzle was built for.
	Side int
	// ShuffleTries is how many permutations the forced-crossing loop
	// drew before accepting one.
	ShuffleTries int
}

// Generate builds a random puzzle for the given parameters. Parameter
// validation is the only user-facing failure; once parameters are valid,
// generation always succeeds.
func Generate(p puzzle.Params, opts Options) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	n := p.N
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	side := geom.GridSide(n, cfg.PointDensity)
	logf("placing %d points on a %dx%d grid", n, side, side)

	pts := placePoints(n, side, rng)
	edges := buildEdges(pts, cfg)
	logf("greedy construction added %d edges", edges.Len())

	circle := geom.Circle(n, side, cfg.TileSize)
	perm, tries := forceCrossing(edges, circle, cfg.ShuffleMaxTries, rng)
	if tries >= cfg.ShuffleMaxTries {
		logf("shuffle cap of %d reached without a crossing; accepting last permutation", cfg.ShuffleMaxTries)
	} else {
		logf("forced a crossing after %d shuffle tries", tries)
	}

	return Result{
		Params:       p,
		Desc:         encodeRelabeled(edges, perm),
		Aux:          encodeSolution(pts, perm),
		Side:         side,
		ShuffleTries: tries,
	}, nil
}

// placePoints draws n distinct cells from the side*side grid, uniformly
// without replacement via a full shuffle, as integer points.
func placePoints(n, side int, rng *rand.Rand) []geom.Point {
	cells := make([]int, side*side)
	for i := range cells {
		cells[i] = i
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: cells[i] % side, Y: cells[i] / side, D: 1}
	}
	return pts
}

// candidate is a potential second endpoint, ranked by squared distance
// with vertex index as the tiebreak.
type candidate struct {
	dist  int
	index int
}

// buildEdges runs the greedy construction. Passes repeat until one adds
// nothing: each pass walks vertices in ascending (degree, index) order,
// and for the first vertex that can take an edge, tries targets from
// nearest to farthest until one neither passes through a point nor
// crosses an existing edge. Adding an edge restarts the pass so the
// ordering reflects the new degrees.
func buildEdges(pts []geom.Point, cfg *config.Config) *graph.EdgeSet {
	n := len(pts)
	edges := graph.NewEdgeSet()
	queue := newDegreeQueue(n)
	cands := make([]candidate, 0, n)

	for {
		added := false
		order := queue.inOrder()

		for pos, v := range order {
			if queue.degree(v) >= cfg.MaxDegree {
				// Minimum-degree ordering: nothing past here can
				// take an edge either.
				break
			}

			// Targets before pos were already tried with the roles
			// swapped on an earlier vertex of this pass.
			cands = cands[:0]
			for _, u := range order[pos+1:] {
				if queue.degree(u) >= cfg.MaxDegree || edges.Contains(v, u) {
					continue
				}
				dx := pts[u].X - pts[v].X
				dy := pts[u].Y - pts[v].Y
				cands = append(cands, candidate{dist: dx*dx + dy*dy, index: u})
			}
			slices.SortStableFunc(cands, func(a, b candidate) int {
				if a.dist != b.dist {
					return a.dist - b.dist
				}
				return a.index - b.index
			})

			for _, c := range cands {
				u := c.index
				if segmentHitsPoint(pts, v, u) || segmentCrossesEdge(pts, edges, v, u) {
					continue
				}
				if err := edges.Add(v, u); err != nil {
					panic(err) // candidates exclude existing edges
				}
				queue.increment(v)
				queue.increment(u)
				added = true
				break
			}
			if added {
				break
			}
		}

		if !added {
			return edges
		}
	}
}

// segmentHitsPoint reports whether the segment v-u passes through any
// other point of the layout, using the degenerate point-segment case of
// the exact predicate.
func segmentHitsPoint(pts []geom.Point, v, u int) bool {
	for p := range pts {
		if p == v || p == u {
			continue
		}
		if geom.Intersects(pts[u], pts[v], pts[p], pts[p]) {
			return true
		}
	}
	return false
}

// segmentCrossesEdge reports whether the segment v-u crosses any stored
// edge. Edges sharing an endpoint with the candidate are skipped; they
// meet at the shared vertex by definition.
func segmentCrossesEdge(pts []geom.Point, edges *graph.EdgeSet, v, u int) bool {
	for _, e := range edges.Edges() {
		if e.A == v || e.A == u || e.B == v || e.B == u {
			continue
		}
		if geom.Intersects(pts[u], pts[v], pts[e.A], pts[e.B]) {
			return true
		}
	}
	return false
}

// forceCrossing draws random relabelings until the graph has at least one
// crossing on the circular reference layout, so the puzzle is not already
// solved when first displayed. Termination is probabilistic; maxTries
// bounds the loop, and on exhaustion the last permutation is accepted.
// Graphs with no two independent edges can never cross and take the first
// permutation drawn.
func forceCrossing(edges *graph.EdgeSet, circle []geom.Point, maxTries int, rng *rand.Rand) (perm []int, tries int) {
	n := len(circle)
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	shuffle := func() {
		rng.Shuffle(n, func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
	}

	if !hasIndependentPair(edges) {
		shuffle()
		return perm, 1
	}

	for tries = 1; ; tries++ {
		shuffle()
		if circleHasCrossing(edges, circle, perm) || tries >= maxTries {
			return perm, tries
		}
	}
}

// hasIndependentPair reports whether any two edges share no endpoint.
func hasIndependentPair(edges *graph.EdgeSet) bool {
	es := edges.Edges()
	for i, e := range es {
		for _, e2 := range es[i+1:] {
			if !e.SharesEndpoint(e2) {
				return true
			}
		}
	}
	return false
}

// circleHasCrossing tests all independent edge pairs on the circular
// layout under the relabeling perm.
func circleHasCrossing(edges *graph.EdgeSet, circle []geom.Point, perm []int) bool {
	es := edges.Edges()
	for i, e := range es {
		for _, e2 := range es[i+1:] {
			if e.SharesEndpoint(e2) {
				continue
			}
			if geom.Intersects(circle[perm[e2.A]], circle[perm[e2.B]],
				circle[perm[e.A]], circle[perm[e.B]]) {
				return true
			}
		}
	}
	return false
}

// encodeRelabeled emits the description string: every edge mapped through
// the accepted permutation, re-canonicalized, and sorted ascending so the
// encoding leaks nothing about construction order.
func encodeRelabeled(edges *graph.EdgeSet, perm []int) string {
	relabeled := make([]graph.Edge, 0, edges.Len())
	for _, e := range edges.Edges() {
		relabeled = append(relabeled, graph.NewEdge(perm[e.A], perm[e.B]))
	}
	slices.SortFunc(relabeled, graph.Edge.Compare)
	return puzzle.EncodeDescription(relabeled)
}

// encodeSolution records the pre-shuffle grid layout, carried over to the
// shuffled labels, as the auxiliary solution string. Coordinates are
// rescaled to an even denominator and offset by half a unit so solved
// points land in cell centres rather than exactly on grid lines.
func encodeSolution(pts []geom.Point, perm []int) string {
	solved := make([]geom.Point, len(pts))
	for i, pt := range pts {
		if pt.D%2 != 0 {
			pt.X *= 2
			pt.Y *= 2
			pt.D *= 2
		}
		pt.X += pt.D / 2
		pt.Y += pt.D / 2
		solved[perm[i]] = pt
	}
	return puzzle.EncodeSolution(solved)
}
