package puzzle

import (
	"fmt"
	"strings"

	"github.com/buelent/untangle/pkg/errors"
	"github.com/buelent/untangle/pkg/geom"
)

// FormatMove renders the move token repositioning vertex i to pt.
func FormatMove(i int, pt geom.Point) string {
	return fmt.Sprintf("P%d:%d,%d/%d", i, pt.X, pt.Y, pt.D)
}

// EncodeSolution renders the auxiliary solution string for a solved
// layout: the auto-solve marker followed by one reposition token per
// vertex in index order. The result is a valid move string.
func EncodeSolution(pts []geom.Point) string {
	var b strings.Builder
	b.WriteByte('S')
	for i, pt := range pts {
		b.WriteByte(';')
		b.WriteString(FormatMove(i, pt))
	}
	return b.String()
}

// ApplyMove applies one move string and returns the resulting state. The
// receiver is left untouched and stays valid. On any malformed token the
// whole move fails: the partially built state is discarded and an error
// is returned.
//
// Completion is recomputed after the tokens are applied, unless the state
// was already completed - "won" is sticky and does not flip back when a
// point is dragged into an apparently crossing position afterwards.
func (s *State) ApplyMove(move string) (*State, error) {
	ret := s.Duplicate()
	ret.JustSolved = false

	rest := move
	for rest != "" {
		switch rest[0] {
		case 'S':
			rest = strings.TrimPrefix(rest[1:], ";")
			ret.Cheated = true
			ret.JustSolved = true
		case 'P':
			i, pt, r, err := scanReposition(rest[1:])
			if err != nil {
				ret.Release()
				return nil, err
			}
			if i >= ret.params.N {
				ret.Release()
				return nil, errors.New(errors.ErrCodeMoveSyntax, "vertex %d out of range in move", i)
			}
			ret.Pts[i] = pt
			rest = strings.TrimPrefix(r, ";")
		default:
			ret.Release()
			return nil, errors.New(errors.ErrCodeMoveSyntax, "unexpected %q in move", rest)
		}
	}

	if !ret.Completed {
		ret.Completed = !ret.hasCrossing()
	}
	return ret, nil
}

// Solve replays the auxiliary solution recorded at generation time. The
// engine has no independent solver: with no recorded solution the request
// fails rather than attempting computation.
func (s *State) Solve(aux string) (*State, error) {
	if aux == "" {
		return nil, errors.New(errors.ErrCodeNoSolution, "solution not known for this puzzle")
	}
	return s.ApplyMove(aux)
}

// scanReposition parses "<i>:<x>,<y>/<d>" from the front of s, returning
// the remainder after the token.
func scanReposition(s string) (i int, pt geom.Point, rest string, err error) {
	fail := func() (int, geom.Point, string, error) {
		return 0, geom.Point{}, "", errors.New(errors.ErrCodeMoveSyntax, "malformed reposition token at %q", s)
	}

	i, r, ok := scanIndex(s)
	if !ok {
		return fail()
	}
	if !strings.HasPrefix(r, ":") {
		return fail()
	}
	x, r, ok := scanSigned(r[1:])
	if !ok {
		return fail()
	}
	if !strings.HasPrefix(r, ",") {
		return fail()
	}
	y, r, ok := scanSigned(r[1:])
	if !ok {
		return fail()
	}
	if !strings.HasPrefix(r, "/") {
		return fail()
	}
	d, r, ok := scanIndex(r[1:])
	if !ok {
		return fail()
	}
	if d <= 0 {
		return 0, geom.Point{}, "", errors.New(errors.ErrCodeMoveSyntax, "non-positive denominator %d in move", d)
	}
	return i, geom.Point{X: x, Y: y, D: d}, r, nil
}

// scanSigned consumes an optionally negative decimal integer.
func scanSigned(s string) (val int, rest string, ok bool) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	val, rest, ok = scanIndex(s)
	if neg {
		val = -val
	}
	return val, rest, ok
}
