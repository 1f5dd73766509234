package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buelent/untangle/pkg/puzzle"
)

// verifyOpts holds the command-line flags for the verify command.
type verifyOpts struct {
	n     int      // number of vertices the description is checked against
	moves []string // move strings applied in order after validation
}

// newVerifyCmd creates the verify command. It validates a description,
// optionally applies move strings in order, and reports the resulting
// completion state. A rejected description or move string fails the
// command; states produced before the failing move are discarded.
func newVerifyCmd() *cobra.Command {
	var opts verifyOpts

	cmd := &cobra.Command{
		Use:   "verify <description>",
		Short: "Validate a puzzle description and optionally apply moves",
		Long: `Validate a puzzle description against a vertex count, optionally apply
move strings in order, and report whether the final layout is untangled.

Examples:
  untangle verify -n 4 "0-2,1-3"
  untangle verify -n 4 "0-2,1-3" --move "P0:128,140/64"
  untangle verify -n 4 "0-2,1-3" --move "P0:5,5/2" --move "P2:1,1/2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVerify(c, &opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.n, "n", "n", puzzle.DefaultParams().N, "number of vertices (at least 4)")
	cmd.Flags().StringArrayVar(&opts.moves, "move", nil, "move string to apply (repeatable, applied in order)")

	return cmd
}

func runVerify(c *cobra.Command, opts *verifyOpts, desc string) error {
	logger := loggerFromContext(c.Context())
	cfg := configFromContext(c.Context())

	st, err := puzzle.New(cfg, puzzle.Params{N: opts.n}, desc)
	if err != nil {
		return err
	}
	defer func() { st.Release() }()
	printSuccess("description is valid (%d vertices, %d edges)", opts.n, st.Graph().Edges().Len())

	for i, mv := range opts.moves {
		logger.Debugf("applying move %d: %s", i+1, mv)
		next, err := st.ApplyMove(mv)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		st.Release()
		st = next
	}

	printKeyValue("moves", strconv.Itoa(len(opts.moves)))
	printKeyValue("completed", strconv.FormatBool(st.Completed))
	if st.Cheated {
		printDetail("solution replay was used")
	}
	return nil
}
