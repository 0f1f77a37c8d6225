package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/focusdeck-io/focusdeck/internal/session"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run a headless pomodoro timer",
	Long: `Run a pomodoro countdown in the terminal without the panel.
By default a work session is started; --break and --long-break start
the corresponding break durations instead.`,
	RunE: runTimer,
}

var (
	breakFlag     bool
	longBreakFlag bool
)

func init() {
	timerCmd.Flags().BoolVar(&breakFlag, "break", false, "run a short break")
	timerCmd.Flags().BoolVar(&longBreakFlag, "long-break", false, "run a long break")
}

func runTimer(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, err := newController(display)
	if err != nil {
		return err
	}

	var intent any = session.StartTimer{}
	if breakFlag || longBreakFlag {
		intent = session.StartBreak{Long: longBreakFlag}
	}
	if err := dispatch(c, display, intent); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	// The countdown runs on the engine's goroutine; wait for the completion
	// signal rather than the zero tick, which rounding can render early.
	select {
	case <-display.timerDone:
		fmt.Println()
		return nil
	case <-sig:
		fmt.Println("\nTimer abandoned.")
		return nil
	}
}
