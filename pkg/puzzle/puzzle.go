// Package puzzle implements the state and move engine of the untangle
// game core.
//
// A puzzle is an immutable planar-capable graph plus a live layout of
// rational points, one per vertex. The engine consumes the compact text
// formats that cross the boundary to the host UI:
//
//   - a description string, "0-1,0-2,1-3,...": the edge list under the
//     final vertex labelling, canonical pairs sorted ascending
//   - a move string, zero or more "P<i>:<x>,<y>/<d>" tokens optionally
//     preceded by "S" (the auto-solve marker), tokens optionally joined
//     by ";"
//   - an auxiliary solution string, an "S"-prefixed move string recorded
//     at generation time that replays the solved layout
//
// Moves apply atomically: a malformed token rejects the whole move and the
// prior state remains current. Completion - no two independent edges
// crossing - is recomputed after every move until first achieved, and is
// sticky from then on.
package puzzle

import (
	"strconv"

	"github.com/buelent/untangle/pkg/errors"
)

// MinPoints is the smallest playable vertex count. Below this the forced
// crossing shuffle has nothing to work with.
const MinPoints = 4

// Params are the generation parameters of a puzzle.
type Params struct {
	N int // number of points
}

// DefaultParams returns the reference default of 10 points.
func DefaultParams() Params { return Params{N: 10} }

// Validate rejects parameter sets the core cannot generate or play.
func (p Params) Validate() error {
	if p.N < MinPoints {
		return errors.New(errors.ErrCodeInvalidParams,
			"number of points must be at least %d, got %d", MinPoints, p.N)
	}
	return nil
}

// Encode renders the parameters in their textual form.
func (p Params) Encode() string { return strconv.Itoa(p.N) }

// DecodeParams parses the textual parameter form produced by Encode.
func DecodeParams(s string) (Params, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Params{}, errors.Wrap(errors.ErrCodeInvalidParams, err, "malformed parameter string %q", s)
	}
	p := Params{N: n}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
