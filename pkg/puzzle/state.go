package puzzle

import (
	"slices"

	"github.com/buelent/untangle/pkg/config"
	"github.com/buelent/untangle/pkg/geom"
	"github.com/buelent/untangle/pkg/graph"
)

// State is one snapshot of a puzzle in play: the shared graph, the live
// layout, and the win-condition flags. States form a chain through
// ApplyMove - the previous state stays valid (the host UI interpolates
// between old and new layouts), and all states in the chain share one
// reference-counted Graph.
type State struct {
	params Params
	cfg    *config.Config

	// W and H are the extent of the coordinate system only; points carry
	// their own denominators.
	W, H int

	// Pts is the current layout, one point per vertex. Treat as
	// read-only; reposition vertices through ApplyMove.
	Pts []geom.Point

	graph *graph.Graph

	// Completed is the win condition: no two independent edges cross.
	// Once true it never reverts.
	Completed bool
	// Cheated records that the recorded solution was replayed.
	Cheated bool
	// JustSolved is set only on the state produced by the solving move,
	// so the UI can pick a longer animation for it.
	JustSolved bool
}

// New builds the initial state for a description: the vertices laid out
// on the reference circle. The description is validated in full before
// any state is constructed. A nil cfg means config.Default().
func New(cfg *config.Config, p Params, desc string) (*State, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	edges, err := parseDescription(p, desc)
	if err != nil {
		return nil, err
	}

	side := geom.GridSide(p.N, cfg.PointDensity)
	return &State{
		params: p,
		cfg:    cfg,
		W:      side,
		H:      side,
		Pts:    geom.Circle(p.N, side, cfg.TileSize),
		graph:  graph.New(edges),
	}, nil
}

// Params returns the generation parameters of the puzzle.
func (s *State) Params() Params { return s.params }

// Graph returns the shared edge structure.
func (s *State) Graph() *graph.Graph { return s.graph }

// Duplicate returns a deep copy of the layout sharing the graph. The
// graph share is O(1); the point array is copied.
func (s *State) Duplicate() *State {
	dup := *s
	dup.Pts = slices.Clone(s.Pts)
	dup.graph = s.graph.Retain()
	return &dup
}

// Release drops this state's ownership of the shared graph. The state
// must not be used afterwards.
func (s *State) Release() {
	s.graph.Release()
	s.graph = nil
}

// InBounds reports whether a point lies inside the puzzle's coordinate
// system. The host UI uses this to let a drag off the window cancel the
// move instead of producing one.
func (s *State) InBounds(pt geom.Point) bool {
	return pt.X >= 0 && pt.X < s.W*pt.D && pt.Y >= 0 && pt.Y < s.H*pt.D
}

// hasCrossing reports whether any pair of edges that share no endpoint
// intersects under the current layout. O(E^2) pairs, each an exact test.
func (s *State) hasCrossing() bool {
	edges := s.graph.Edges().Edges()
	for i, e := range edges {
		for _, e2 := range edges[i+1:] {
			if e.SharesEndpoint(e2) {
				continue
			}
			if geom.Intersects(s.Pts[e2.A], s.Pts[e2.B], s.Pts[e.A], s.Pts[e.B]) {
				return true
			}
		}
	}
	return false
}
