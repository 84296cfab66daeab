package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/NicoEre03/habit-tracker/internal/engine"
	"github.com/NicoEre03/habit-tracker/internal/ui"
)

func newReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run the reconciliation pass over the full history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			today := time.Now().UTC()
			if err := svc.DateRepo().Ensure(ctx, engine.FormatDate(engine.DateOf(today))); err != nil {
				return err
			}
			writes, err := svc.Reconcile(ctx, today)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Cells written", writes))
			return nil
		},
	}

	return cmd
}
