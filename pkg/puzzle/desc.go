package puzzle

import (
	"math"
	"strings"

	"github.com/buelent/untangle/pkg/errors"
	"github.com/buelent/untangle/pkg/graph"
)

// ValidateDescription checks a description string against the parameters
// without building a state. It rejects, with a human-readable reason:
// indices outside [0, n), malformed separators, trailing garbage,
// self-loops, and duplicate edges. An empty description is a valid graph
// with no edges.
func ValidateDescription(p Params, desc string) error {
	_, err := parseDescription(p, desc)
	return err
}

// EncodeDescription renders edges as a description string. The input must
// already be canonical; edges are emitted in ascending (A, B) order, so
// equal graphs encode identically.
func EncodeDescription(edges []graph.Edge) string {
	var b strings.Builder
	for i, e := range edges {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

// parseDescription scans a description string into an edge set.
func parseDescription(p Params, desc string) (*graph.EdgeSet, error) {
	edges := graph.NewEdgeSet()
	rest := desc
	for rest != "" {
		a, r, ok := scanIndex(rest)
		if !ok {
			return nil, errors.New(errors.ErrCodeDescSyntax, "expected number in game description at %q", rest)
		}
		rest = r
		if a >= p.N {
			return nil, errors.New(errors.ErrCodeDescRange, "number out of range in game description: %d", a)
		}
		if !strings.HasPrefix(rest, "-") {
			return nil, errors.New(errors.ErrCodeDescSyntax, "expected '-' after number in game description")
		}
		rest = rest[1:]
		b, r, ok := scanIndex(rest)
		if !ok {
			return nil, errors.New(errors.ErrCodeDescSyntax, "expected number after '-' in game description")
		}
		rest = r
		if b >= p.N {
			return nil, errors.New(errors.ErrCodeDescRange, "number out of range in game description: %d", b)
		}
		if a == b {
			return nil, errors.New(errors.ErrCodeDescSyntax, "self-loop in game description: %d-%d", a, b)
		}
		if edges.Contains(a, b) {
			return nil, errors.New(errors.ErrCodeDescSyntax, "duplicate edge in game description: %s", graph.NewEdge(a, b))
		}
		if err := edges.Add(a, b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "adding edge %d-%d", a, b)
		}
		if rest != "" {
			if !strings.HasPrefix(rest, ",") {
				return nil, errors.New(errors.ErrCodeDescSyntax, "expected ',' after number in game description")
			}
			rest = rest[1:]
			if rest == "" {
				return nil, errors.New(errors.ErrCodeDescSyntax, "trailing ',' in game description")
			}
		}
	}
	return edges, nil
}

// scanIndex consumes a run of decimal digits from the front of s.
// Returns ok=false when s does not start with a digit, or when the run
// overflows int. A numeral the platform cannot represent is malformed
// input, never a wrapped value: letting it wrap would turn a value the
// range checks compare against N into a negative or aliased index.
func scanIndex(s string) (val int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := int(s[i] - '0')
		if val > (math.MaxInt-d)/10 {
			return 0, s, false
		}
		val = val*10 + d
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	return val, s[i:], true
}
