// Package graph stores the undirected edge structure of an untangle
// puzzle.
//
// Edges are canonical (lower index first) and kept in an ordered set so
// enumeration is deterministic. A Graph wraps the edge set with an explicit
// reference count: the move engine duplicates puzzle states freely while
// the host UI keeps old and new states alive for animation, and all of
// those states share one immutable Graph. Post-construction the edge set is
// never mutated, so sharing needs nothing beyond the atomic count.
package graph

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// ErrDuplicateEdge is returned by [EdgeSet.Add] when the canonical pair is
// already present. Callers are expected to check Contains first; a
// duplicate insert indicates a bookkeeping bug upstream.
var ErrDuplicateEdge = errors.New("duplicate edge")

// Edge is an undirected edge between two vertex indices, stored with
// A < B. Construct edges with NewEdge so the invariant holds.
type Edge struct {
	A, B int
}

// NewEdge returns the canonical edge for the unordered pair (a, b).
// A self-loop violates the core's geometric assumptions and panics.
func NewEdge(a, b int) Edge {
	if a == b {
		panic(fmt.Sprintf("graph: self-loop on vertex %d", a))
	}
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Compare orders edges lexicographically by (A, B).
func (e Edge) Compare(o Edge) int {
	if e.A != o.A {
		return e.A - o.A
	}
	return e.B - o.B
}

// SharesEndpoint reports whether the two edges have a vertex in common.
// Edge pairs sharing an endpoint are skipped by crossing checks: segments
// meeting at a shared vertex always "touch" there and carry no information
// about the layout being tangled.
func (e Edge) SharesEndpoint(o Edge) bool {
	return o.A == e.A || o.A == e.B || o.B == e.A || o.B == e.B
}

func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.A, e.B) }

// EdgeSet is a deduplicated collection of canonical edges with ordered
// enumeration and logarithmic membership tests. It is not safe for
// concurrent mutation; once wrapped in a Graph it is treated as immutable.
type EdgeSet struct {
	tree *redblacktree.Tree
}

// NewEdgeSet returns an empty edge set.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{
		tree: redblacktree.NewWith(func(x, y interface{}) int {
			return x.(Edge).Compare(y.(Edge))
		}),
	}
}

// Add inserts the canonicalized pair (a, b). It returns ErrDuplicateEdge
// if the edge is already present, and panics on a self-loop (an internal
// invariant violation, not a recoverable input error).
func (s *EdgeSet) Add(a, b int) error {
	e := NewEdge(a, b)
	if _, found := s.tree.Get(e); found {
		return fmt.Errorf("%w: %s", ErrDuplicateEdge, e)
	}
	s.tree.Put(e, struct{}{})
	return nil
}

// Contains reports whether the unordered pair (a, b) is in the set.
func (s *EdgeSet) Contains(a, b int) bool {
	_, found := s.tree.Get(NewEdge(a, b))
	return found
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int { return s.tree.Size() }

// Edges returns all edges in ascending (A, B) order.
func (s *EdgeSet) Edges() []Edge {
	out := make([]Edge, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(Edge))
	}
	return out
}

// Degrees returns the degree of every vertex touched by an edge.
func (s *EdgeSet) Degrees() map[int]int {
	deg := make(map[int]int)
	it := s.tree.Iterator()
	for it.Next() {
		e := it.Key().(Edge)
		deg[e.A]++
		deg[e.B]++
	}
	return deg
}

// Graph is an immutable, reference-counted owner of an EdgeSet. A new
// Graph starts with one reference. Every duplicated puzzle state calls
// Retain; every released state calls Release. When the count reaches zero
// the edge set is detached so stale use is caught loudly instead of
// silently reading freed state.
type Graph struct {
	refs  atomic.Int32
	edges *EdgeSet
}

// New wraps the edge set in a Graph holding the initial reference.
// The caller must not mutate the edge set afterwards.
func New(edges *EdgeSet) *Graph {
	g := &Graph{edges: edges}
	g.refs.Store(1)
	return g
}

// Edges returns the shared edge set. Panics if the graph has already been
// fully released.
func (g *Graph) Edges() *EdgeSet {
	if g.edges == nil {
		panic("graph: use after release")
	}
	return g.edges
}

// Retain adds an owner and returns the graph for convenient chaining.
func (g *Graph) Retain() *Graph {
	if g.refs.Add(1) <= 1 {
		panic("graph: retain after release")
	}
	return g
}

// Release drops one owner. The last release detaches the edge set.
func (g *Graph) Release() {
	n := g.refs.Add(-1)
	if n < 0 {
		panic("graph: release without matching retain")
	}
	if n == 0 {
		g.edges = nil
	}
}

// Refs returns the current owner count. Intended for tests and debugging.
func (g *Graph) Refs() int { return int(g.refs.Load()) }
