package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPresetsCmd creates the presets command, which lists the configured
// preset puzzle sizes usable with "generate --preset".
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the preset puzzle sizes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg := configFromContext(c.Context())
			printInfo("preset puzzle sizes")
			for i, n := range cfg.Presets {
				printKeyValue(fmt.Sprintf("%d", i+1), fmt.Sprintf("%d points", n))
			}
			return nil
		},
	}
}
