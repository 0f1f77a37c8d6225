package cli

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/focusdeck-io/focusdeck/internal/focus"
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// consoleDisplay renders controller snapshots as plain command output. It
// remembers the last surfaced error so commands can fail with a non-zero
// exit after a synchronous dispatch.
type consoleDisplay struct {
	quietSnapshots bool
	isTTY          bool
	lastErr        error
	lastSettings   *models.Settings

	timerDone chan struct{}
	doneOnce  sync.Once
}

func newConsoleDisplay() *consoleDisplay {
	return &consoleDisplay{
		isTTY:     term.IsTerminal(int(os.Stdout.Fd())),
		timerDone: make(chan struct{}),
	}
}

// Err returns the last surfaced error, if any.
func (d *consoleDisplay) Err() error {
	return d.lastErr
}

func (d *consoleDisplay) TasksSnapshot(tasks []*models.Task) {
	if d.quietSnapshots {
		return
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks. Run 'focusdeck task add' to create one.")
		return
	}
	for i, t := range tasks {
		id := t.ID
		if id == "" {
			id = "(untitled)"
		}
		line := fmt.Sprintf("%3d  %-16s %-12s @%-12s %s", i, id, t.Status, t.Environment, humanize.Time(t.CreatedAt))
		if n := len(t.ModifiedFiles); n > 0 {
			line += fmt.Sprintf("  [%d file(s)]", n)
		}
		fmt.Println(line)
	}
}

func (d *consoleDisplay) SettingsSnapshot(s *models.Settings) {
	d.lastSettings = s
	if d.quietSnapshots {
		return
	}
	fmt.Printf("Task statuses:  %v\n", s.TaskStatuses)
	fmt.Printf("Environments:   %v\n", s.Environments)
	fmt.Printf("Pomodoro:       work %dm, short break %dm, long break %dm every %d sessions\n",
		s.Pomodoro.WorkMinutes, s.Pomodoro.ShortBreakMinutes, s.Pomodoro.LongBreakMinutes, s.Pomodoro.LongBreakInterval)
	fmt.Printf("Notifications:  inactivity=%v (%dm), pomodoro=%v, reminders=%v\n",
		s.Notifications.InactivityAlerts, s.Notifications.InactivityThresholdMinutes,
		s.Notifications.PomodoroAlerts, s.Notifications.TaskReminders)
	fmt.Printf("Focus hides:    sidebar=%v activity_bar=%v status_bar=%v panel=%v minimap=%v line_numbers=%v\n",
		s.FocusMode.HideSidebar, s.FocusMode.HideActivityBar, s.FocusMode.HideStatusBar,
		s.FocusMode.HidePanel, s.FocusMode.HideMinimap, s.FocusMode.HideLineNumbers)
}

func (d *consoleDisplay) TimerTick(display string) {
	if d.isTTY {
		fmt.Printf("\r  %s ", display)
	} else {
		fmt.Println(display)
	}
}

// TimerDone fires after the session's notifications are delivered, so the
// headless timer command can exit without dropping them.
func (d *consoleDisplay) TimerDone() {
	d.doneOnce.Do(func() { close(d.timerDone) })
}

func (d *consoleDisplay) FocusModeChanged(enabled bool) {
	if enabled {
		fmt.Println("Focus mode enabled.")
	} else {
		fmt.Println("Focus mode disabled.")
	}
}

func (d *consoleDisplay) FileListSnapshot(files []string) {
	if len(files) == 0 {
		fmt.Println("No file activity observed.")
		return
	}
	for _, f := range files {
		fmt.Println(f)
	}
}

func (d *consoleDisplay) Info(message string) {
	if d.isTTY {
		fmt.Print("\r")
	}
	fmt.Println(message)
}

func (d *consoleDisplay) Error(message string) {
	d.lastErr = errors.New(message)
	fmt.Fprintln(os.Stderr, styleError.Render(message))
}

// ApplyDirective prints one focus-mode directive, so the headless toggle
// shows what a hosting panel would do.
func (d *consoleDisplay) ApplyDirective(directive focus.Directive) {
	verb := "show"
	if !directive.Visible {
		verb = "hide"
	}
	fmt.Printf("  %s %s\n", verb, directive.Surface)
}
