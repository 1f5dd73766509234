package puzzle

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/buelent/untangle/pkg/config"
	"github.com/buelent/untangle/pkg/errors"
	"github.com/buelent/untangle/pkg/geom"
)

func testConfig() *config.Config { return config.Default() }

// crossedSquare is a 4-point puzzle whose two edges are the diagonals of
// the reference circle: crossed initially, solvable by moving one vertex.
func crossedSquare(t *testing.T) *State {
	t.Helper()
	st, err := New(testConfig(), Params{N: 4}, "0-2,1-3")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return st
}

func TestNewState(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()

	if st.Params().N != 4 {
		t.Errorf("Params().N = %d, want 4", st.Params().N)
	}
	if st.W != 4 || st.H != 4 {
		t.Errorf("extent = %dx%d, want 4x4", st.W, st.H)
	}
	if got := len(st.Pts); got != 4 {
		t.Fatalf("len(Pts) = %d, want 4", got)
	}
	for i, p := range st.Pts {
		if p.D != testConfig().TileSize {
			t.Errorf("point %d denominator = %d, want %d", i, p.D, testConfig().TileSize)
		}
	}
	if st.Completed || st.Cheated || st.JustSolved {
		t.Error("fresh state has flags set")
	}
}

func TestNewStateRejectsBadInput(t *testing.T) {
	if _, err := New(testConfig(), Params{N: 3}, ""); !errors.Is(err, errors.ErrCodeInvalidParams) {
		t.Errorf("err = %v, want INVALID_PARAMS", err)
	}
	if _, err := New(testConfig(), Params{N: 4}, "0-9"); !errors.Is(err, errors.ErrCodeDescRange) {
		t.Errorf("err = %v, want DESC_RANGE", err)
	}
}

func TestApplyMoveRepositions(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()

	moved, err := st.ApplyMove("P0:128,140/64")
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	defer moved.Release()

	want := geom.Point{X: 128, Y: 140, D: 64}
	if moved.Pts[0] != want {
		t.Errorf("Pts[0] = %+v, want %+v", moved.Pts[0], want)
	}
	// The prior state keeps its own layout.
	if st.Pts[0] == want {
		t.Error("move mutated the original state")
	}
}

func TestCompletionDetection(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()

	// The diagonals cross on the circle; an empty move just recomputes.
	tangled, err := st.ApplyMove("")
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	defer tangled.Release()
	if tangled.Completed {
		t.Fatal("Completed = true while the diagonals cross")
	}

	// Pulling vertex 0 inside the circle, past the 1-3 chord, uncrosses.
	solved, err := tangled.ApplyMove("P0:128,140/64")
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	defer solved.Release()
	if !solved.Completed {
		t.Fatal("Completed = false after uncrossing")
	}
	if solved.Cheated || solved.JustSolved {
		t.Error("manual solve set Cheated/JustSolved")
	}
}

func TestCompletionIsSticky(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()

	solved, err := st.ApplyMove("P0:128,140/64")
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	defer solved.Release()
	if !solved.Completed {
		t.Fatal("setup: expected completion")
	}

	// Dragging the vertex back into a crossing position must not revoke
	// the win.
	recrossed, err := solved.ApplyMove("P0:128,19/64")
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	defer recrossed.Release()
	if !recrossed.Completed {
		t.Error("Completed reverted to false after re-crossing")
	}
}

func TestApplyMoveAtomicity(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()
	before := slices.Clone(st.Pts)

	tests := []struct {
		name string
		move string
	}{
		{name: "MalformedSecondToken", move: "P0:1,2/64;Pbroken"},
		{name: "UnknownToken", move: "P0:1,2/64;X"},
		{name: "IndexOutOfRange", move: "P9:1,2/64"},
		{name: "IndexOverflowsToNegative", move: "P18446744073709551615:1,1/1"},
		{name: "IndexOverflowsToValid", move: "P18446744073709551616:1,1/1"},
		{name: "DenominatorOverflows", move: "P0:1,2/18446744073709551616"},
		{name: "ZeroDenominator", move: "P0:1,2/0"},
		{name: "MissingDenominator", move: "P0:1,2"},
		{name: "EmptyPointToken", move: "P"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := st.ApplyMove(tt.move)
			if err == nil {
				got.Release()
				t.Fatalf("ApplyMove(%q) succeeded, want error", tt.move)
			}
			if !errors.Is(err, errors.ErrCodeMoveSyntax) {
				t.Errorf("err = %v, want MOVE_SYNTAX", err)
			}
			if !slices.Equal(st.Pts, before) {
				t.Error("failed move mutated the original state")
			}
			if got := st.Graph().Refs(); got != 1 {
				t.Errorf("graph refs = %d after failed move, want 1", got)
			}
		})
	}
}

func TestSolveMarkersAndReset(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()

	cheated, err := st.ApplyMove("S")
	if err != nil {
		t.Fatalf("ApplyMove(S): %v", err)
	}
	defer cheated.Release()
	if !cheated.Cheated || !cheated.JustSolved {
		t.Errorf("after S: Cheated=%v JustSolved=%v, want true/true", cheated.Cheated, cheated.JustSolved)
	}

	// JustSolved is a one-move signal; Cheated is permanent.
	next, err := cheated.ApplyMove("")
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	defer next.Release()
	if next.JustSolved {
		t.Error("JustSolved survived a further move")
	}
	if !next.Cheated {
		t.Error("Cheated reset by a further move")
	}
}

func TestSolveWithoutAux(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()

	if _, err := st.Solve(""); !errors.Is(err, errors.ErrCodeNoSolution) {
		t.Errorf("Solve(\"\") err = %v, want NO_SOLUTION", err)
	}
}

func TestDuplicateSharesGraph(t *testing.T) {
	st := crossedSquare(t)

	dup := st.Duplicate()
	if got := st.Graph().Refs(); got != 2 {
		t.Errorf("refs after Duplicate = %d, want 2", got)
	}
	if st.Graph() != dup.Graph() {
		t.Error("duplicate does not share the graph")
	}

	dup.Pts[0].X++
	if st.Pts[0].X == dup.Pts[0].X {
		t.Error("duplicate shares the point array")
	}

	dup.Release()
	if got := st.Graph().Refs(); got != 1 {
		t.Errorf("refs after Release = %d, want 1", got)
	}
	st.Release()
}

func TestInBounds(t *testing.T) {
	st := crossedSquare(t) // extent 4x4
	defer st.Release()

	tests := []struct {
		name string
		pt   geom.Point
		want bool
	}{
		{name: "Origin", pt: geom.Point{X: 0, Y: 0, D: 1}, want: true},
		{name: "Inside", pt: geom.Point{X: 128, Y: 140, D: 64}, want: true},
		{name: "NegativeX", pt: geom.Point{X: -1, Y: 0, D: 1}, want: false},
		{name: "AtRightEdge", pt: geom.Point{X: 4, Y: 0, D: 1}, want: false},
		{name: "BelowBottom", pt: geom.Point{X: 0, Y: 256, D: 64}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.InBounds(tt.pt); got != tt.want {
				t.Errorf("InBounds(%+v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestNearestVertex(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()
	tile := testConfig().TileSize

	// Query right next to vertex 0's pixel position.
	px, py := st.Pts[0].Pixel(tile)
	v, ok := st.NearestVertex(px+3, py+2, tile)
	if !ok || v != 0 {
		t.Errorf("NearestVertex near point 0 = (%d, %v), want (0, true)", v, ok)
	}

	// Far from every vertex: nothing grabbed.
	if v, ok := st.NearestVertex(0, 0, tile); ok {
		t.Errorf("NearestVertex(0,0) = (%d, true), want no grab", v)
	}
}

func TestLayoutExport(t *testing.T) {
	st := crossedSquare(t)
	defer st.Release()

	data, err := MarshalLayout(st)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}

	var got Layout
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.N != 4 || got.Width != 4 || got.Height != 4 {
		t.Errorf("header = n=%d %dx%d, want n=4 4x4", got.N, got.Width, got.Height)
	}
	if got.Description != "0-2,1-3" {
		t.Errorf("Description = %q, want %q", got.Description, "0-2,1-3")
	}
	if len(got.Points) != 4 {
		t.Errorf("len(Points) = %d, want 4", len(got.Points))
	}
	want := []LayoutEdge{{A: 0, B: 2}, {A: 1, B: 3}}
	if !slices.Equal(got.Edges, want) {
		t.Errorf("Edges = %v, want %v", got.Edges, want)
	}
	for i, p := range got.Points {
		lp := LayoutPoint{X: st.Pts[i].X, Y: st.Pts[i].Y, D: st.Pts[i].D}
		if p != lp {
			t.Errorf("Points[%d] = %+v, want %+v", i, p, lp)
		}
	}
}
