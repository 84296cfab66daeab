package root

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/NicoEre03/habit-tracker/internal/engine"
)

func newLogCmd() *cobra.Command {
	var value int
	var date string

	cmd := &cobra.Command{
		Use:   "log <habit>",
		Short: "Log a habit for a date (today by default)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			today := time.Now().UTC()
			if date == "" {
				date = engine.FormatDate(engine.DateOf(today))
			}
			if err := svc.DateRepo().Ensure(ctx, date); err != nil {
				return err
			}
			return svc.UpdateCell(ctx, args[0], date, &value, nil, today)
		},
	}

	cmd.Flags().IntVarP(&value, "value", "v", 1, "Cell value (-2..2)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date column (YYYY-MM-DD)")

	return cmd
}
