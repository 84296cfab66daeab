package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/NicoEre03/habit-tracker/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habit rows",
	}
	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitRemoveCmd(),
		newHabitRenameCmd(),
		newHabitMoveCmd(),
		newHabitFreqCmd(),
	)
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var periodicity string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit row",
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

			if _, err := svc.AddHabit(ctx, args[0], periodicity); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("added ")+args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&periodicity, "freq", "f", "1/d", "Frequency rule, e.g. 1/d, 3/w, 2/m")

	return cmd
}

func newHabitRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a habit row and its history",
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

			return svc.DeleteHabit(ctx, args[0])
		},
	}

	return cmd
}

func newHabitRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <name> <newName>",
		Short: "Rename a habit row",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("current and new habit names are required")
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

			return svc.RenameHabit(ctx, args[0], args[1])
		},
	}

	return cmd
}

func newHabitMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <name> <position>",
		Short: "Move a habit row to a new position (0-based)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("habit name and position are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("position must be an integer: %q", args[1])
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

			pos, _ := strconv.Atoi(args[1])
			return svc.MoveHabit(ctx, args[0], pos)
		},
	}

	return cmd
}

func newHabitFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq <name> <rule>",
		Short: "Change a habit's live frequency rule",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("habit name and frequency rule are required")
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

			return svc.UpdatePeriodicity(ctx, args[0], args[1], time.Now().UTC())
		},
	}

	return cmd
}
