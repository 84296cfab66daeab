package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/NicoEre03/habit-tracker/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with their effective periodicity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			grid, err := svc.ReadGrid(ctx, time.Now().UTC())
			if err != nil {
				return err
			}

			if len(grid.Rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no habits)"))
				return nil
			}
			for _, r := range grid.Rows {
				done := 0
				for _, c := range r.Cells {
					if c.Val == 1 || c.Val == 2 {
						done++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Key.Render(r.Name),
					ui.Muted.Render(r.Periodicity),
					fmt.Sprintf("(%d done / %d days)", done, len(r.Cells)))
			}
			return nil
		},
	}

	return cmd
}
