// Package cli implements the focusdeck CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/focusdeck-io/focusdeck/internal/tui"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "focusdeck",
	Short: "Track tasks and stay focused with pomodoro sessions",
	Long: `Focusdeck tracks work-in-progress tasks alongside a pomodoro timer
and a distraction-hiding focus mode. Running it with no arguments opens
the interactive panel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(debugFlag)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}
