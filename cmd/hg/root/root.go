package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NicoEre03/habit-tracker/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hg",
	Short:         "habit-tracker — spreadsheet-style habit grid with retroactive accounting",
	Long:          "habit-tracker keeps a grid of habits against calendar dates and reconciles every period against its frequency rule.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newServeCmd(),
		newGridCmd(),
		newListCmd(),
		newLogCmd(),
		newNoteCmd(),
		newHabitCmd(),
		newSnapshotCmd(),
		newReconcileCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
