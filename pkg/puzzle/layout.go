package puzzle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Layout is the JSON serialization of a puzzle state. It is a plain
// encoding of the same data the text formats carry - points, edges, and
// the win-condition flags - for consumption by external renderers and
// tooling. Round-trip fidelity: parsing the embedded description and
// replaying the points reproduces an identical state.
type Layout struct {
	N      int `json:"n"`
	Width  int `json:"width"`
	Height int `json:"height"`

	Description string `json:"description"`

	Points []LayoutPoint `json:"points"`
	Edges  []LayoutEdge  `json:"edges"`

	Completed bool `json:"completed"`
	Cheated   bool `json:"cheated,omitempty"`
}

// LayoutPoint is a rational point in a Layout.
type LayoutPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
	D int `json:"d"`
}

// LayoutEdge is an undirected edge in a Layout, with A < B.
type LayoutEdge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// FromState converts a state to its serialization format. Edges appear in
// ascending order for deterministic output.
func FromState(s *State) Layout {
	edges := s.graph.Edges().Edges()
	out := Layout{
		N:           s.params.N,
		Width:       s.W,
		Height:      s.H,
		Description: EncodeDescription(edges),
		Points:      make([]LayoutPoint, len(s.Pts)),
		Edges:       make([]LayoutEdge, len(edges)),
		Completed:   s.Completed,
		Cheated:     s.Cheated,
	}
	for i, p := range s.Pts {
		out.Points[i] = LayoutPoint{X: p.X, Y: p.Y, D: p.D}
	}
	for i, e := range edges {
		out.Edges[i] = LayoutEdge{A: e.A, B: e.B}
	}
	return out
}

// MarshalLayout converts a state to indented JSON bytes.
func MarshalLayout(s *State) ([]byte, error) {
	return json.MarshalIndent(FromState(s), "", "  ")
}

// WriteLayout writes a state as JSON to an io.Writer.
func WriteLayout(s *State, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromState(s)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a state to a JSON file with 0644 permissions.
func WriteLayoutFile(s *State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(s, f)
}
