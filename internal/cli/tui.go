package cli

import (
	"github.com/spf13/cobra"

	"github.com/focusdeck-io/focusdeck/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(debugFlag)
	},
}
