package root

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/NicoEre03/habit-tracker/internal/engine"
)

func newNoteCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "note <habit> <text...>",
		Short: "Attach a note to a habit's cell (today by default)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("habit name and note text are required")
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
			note := strings.Join(args[1:], " ")
			return svc.UpdateCell(ctx, args[0], date, nil, &note, today)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date column (YYYY-MM-DD)")

	return cmd
}
