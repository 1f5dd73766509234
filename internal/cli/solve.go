package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buelent/untangle/pkg/puzzle"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	n   int    // number of vertices the description is checked against
	aux string // recorded solution string from generation
}

// newSolveCmd creates the solve command. The engine has no independent
// solver; solving means replaying the solution string recorded when the
// puzzle was generated.
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <description>",
		Short: "Replay a recorded solution against a puzzle description",
		Long: `Replay the solution string recorded at generation time and confirm the
resulting layout is untangled. Without a recorded solution the command
fails: there is no independent solver.

Example:
  untangle solve -n 4 "0-2,1-3" --aux "S;P0:5,1/2;P1:7,5/2;P2:3,7/2;P3:1,3/2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSolve(c, &opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.n, "n", "n", puzzle.DefaultParams().N, "number of vertices (at least 4)")
	cmd.Flags().StringVar(&opts.aux, "aux", "", "recorded solution string")

	return cmd
}

func runSolve(c *cobra.Command, opts *solveOpts, desc string) error {
	cfg := configFromContext(c.Context())

	st, err := puzzle.New(cfg, puzzle.Params{N: opts.n}, desc)
	if err != nil {
		return err
	}
	defer st.Release()

	solved, err := st.Solve(opts.aux)
	if err != nil {
		return err
	}
	defer solved.Release()

	if !solved.Completed {
		printError("solution replay left the layout tangled")
		return fmt.Errorf("recorded solution does not solve the puzzle")
	}
	printSuccess("solution replay untangles the puzzle")
	return nil
}
