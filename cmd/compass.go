package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vzahanych/wind-activity-app/internal/activity"
)

func newCompassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compass <degrees>...",
		Short: "Convert wind directions in degrees to compass octants",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				deg, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid degrees %q: %w", arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%g\t%s\n", deg, activity.DegreesToCompass(deg))
			}
			return nil
		},
	}
}
