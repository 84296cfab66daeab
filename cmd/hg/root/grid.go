package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/NicoEre03/habit-tracker/internal/tui"
)

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Open the interactive grid view",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunGrid(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
