package cli

import (
	"github.com/spf13/cobra"

	"github.com/focusdeck-io/focusdeck/internal/session"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Toggle focus mode and print the resulting directives",
	Long: `Toggle focus mode once and print the show/hide directive for each
surface the focus-mode settings cover. Surfaces whose hide flag is off
are left untouched.`,
	RunE: runFocus,
}

func runFocus(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, err := newController(display)
	if err != nil {
		return err
	}
	return dispatch(c, display, session.ToggleFocusMode{})
}
