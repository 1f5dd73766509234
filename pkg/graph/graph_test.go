package graph

import (
	"errors"
	"testing"
)

func TestNewEdgeCanonicalizes(t *testing.T) {
	tests := []struct {
		name  string
		a, b  int
		wantA int
		wantB int
	}{
		{name: "AlreadyOrdered", a: 2, b: 5, wantA: 2, wantB: 5},
		{name: "Reversed", a: 5, b: 2, wantA: 2, wantB: 5},
		{name: "Adjacent", a: 1, b: 0, wantA: 0, wantB: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEdge(tt.a, tt.b)
			if e.A != tt.wantA || e.B != tt.wantB {
				t.Errorf("NewEdge(%d, %d) = %v, want %d-%d", tt.a, tt.b, e, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestNewEdgePanicsOnSelfLoop(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for self-loop")
		}
	}()
	NewEdge(3, 3)
}

func TestEdgeSet(t *testing.T) {
	s := NewEdgeSet()

	if err := s.Add(5, 2); err != nil {
		t.Fatalf("Add(5, 2): %v", err)
	}
	if err := s.Add(0, 1); err != nil {
		t.Fatalf("Add(0, 1): %v", err)
	}
	if err := s.Add(2, 3); err != nil {
		t.Fatalf("Add(2, 3): %v", err)
	}

	if !s.Contains(2, 5) {
		t.Error("Contains(2, 5) = false after Add(5, 2)")
	}
	if !s.Contains(5, 2) {
		t.Error("Contains(5, 2) = false after Add(5, 2)")
	}
	if s.Contains(1, 2) {
		t.Error("Contains(1, 2) = true, edge never added")
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}

	want := []Edge{{0, 1}, {2, 3}, {2, 5}}
	got := s.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Edges[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEdgeSetDuplicate(t *testing.T) {
	s := NewEdgeSet()
	if err := s.Add(1, 4); err != nil {
		t.Fatalf("Add(1, 4): %v", err)
	}
	err := s.Add(4, 1)
	if !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("Add(4, 1) err = %v, want ErrDuplicateEdge", err)
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len after duplicate = %d, want 1", got)
	}
}

func TestEdgeSetDegrees(t *testing.T) {
	s := NewEdgeSet()
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}} {
		if err := s.Add(e[0], e[1]); err != nil {
			t.Fatalf("Add(%v): %v", e, err)
		}
	}
	deg := s.Degrees()
	want := map[int]int{0: 3, 1: 2, 2: 2, 3: 1}
	for v, d := range want {
		if deg[v] != d {
			t.Errorf("degree(%d) = %d, want %d", v, deg[v], d)
		}
	}
}

func TestSharesEndpoint(t *testing.T) {
	tests := []struct {
		name string
		e, o Edge
		want bool
	}{
		{name: "Disjoint", e: Edge{0, 1}, o: Edge{2, 3}, want: false},
		{name: "SharedLow", e: Edge{0, 1}, o: Edge{0, 2}, want: true},
		{name: "SharedHigh", e: Edge{0, 2}, o: Edge{1, 2}, want: true},
		{name: "SharedCross", e: Edge{1, 3}, o: Edge{0, 1}, want: true},
		{name: "Identical", e: Edge{1, 3}, o: Edge{1, 3}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.SharesEndpoint(tt.o); got != tt.want {
				t.Errorf("SharesEndpoint(%v, %v) = %v, want %v", tt.e, tt.o, got, tt.want)
			}
		})
	}
}

func TestGraphRefCounting(t *testing.T) {
	s := NewEdgeSet()
	if err := s.Add(0, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}

	g := New(s)
	if got := g.Refs(); got != 1 {
		t.Fatalf("Refs after New = %d, want 1", got)
	}

	g.Retain()
	if got := g.Refs(); got != 2 {
		t.Fatalf("Refs after Retain = %d, want 2", got)
	}

	g.Release()
	if got := g.Refs(); got != 1 {
		t.Fatalf("Refs after Release = %d, want 1", got)
	}
	if got := g.Edges().Len(); got != 1 {
		t.Errorf("Edges().Len() = %d, want 1 while a reference remains", got)
	}

	g.Release()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on Edges after final Release")
			}
		}()
		g.Edges()
	}()
}
