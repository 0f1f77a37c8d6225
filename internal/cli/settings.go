package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focusdeck-io/focusdeck/internal/session"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show and change settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runSettingsShow,
}

var settingsPomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Change pomodoro durations",
	Long: `Change pomodoro durations. Omitted flags keep their current value.
Changing durations restarts a running work timer with the new duration.`,
	RunE: runSettingsPomodoro,
}

var settingsNotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Change notification behavior",
	RunE:  runSettingsNotifications,
}

var settingsAddStatusCmd = &cobra.Command{
	Use:   "add-status [label]",
	Short: "Add a task status label",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAddStatus,
}

var settingsAddEnvironmentCmd = &cobra.Command{
	Use:   "add-environment [label]",
	Short: "Add an environment label",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAddEnvironment,
}

var (
	workMinutes  int
	shortMinutes int
	longMinutes  int
	longInterval int

	inactivityAlerts   bool
	inactivityMinutes  int
	pomodoroAlerts     bool
	taskReminderAlerts bool
)

func init() {
	settingsPomodoroCmd.Flags().IntVar(&workMinutes, "work", 0, "work session minutes")
	settingsPomodoroCmd.Flags().IntVar(&shortMinutes, "short-break", 0, "short break minutes")
	settingsPomodoroCmd.Flags().IntVar(&longMinutes, "long-break", 0, "long break minutes")
	settingsPomodoroCmd.Flags().IntVar(&longInterval, "interval", 0, "work sessions per long break")

	settingsNotificationsCmd.Flags().BoolVar(&inactivityAlerts, "inactivity-alerts", true, "alert after a period of no activity")
	settingsNotificationsCmd.Flags().IntVar(&inactivityMinutes, "inactivity-threshold", 0, "inactivity threshold in minutes")
	settingsNotificationsCmd.Flags().BoolVar(&pomodoroAlerts, "pomodoro-alerts", true, "notify when a session completes")
	settingsNotificationsCmd.Flags().BoolVar(&taskReminderAlerts, "task-reminders", false, "remind about open tasks after a session")

	settingsCmd.AddCommand(settingsAddEnvironmentCmd)
	settingsCmd.AddCommand(settingsAddStatusCmd)
	settingsCmd.AddCommand(settingsNotificationsCmd)
	settingsCmd.AddCommand(settingsPomodoroCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	c, err := newController(display)
	if err != nil {
		return err
	}
	current := currentSettings(c, display)
	display.SettingsSnapshot(current)
	return display.Err()
}

func runSettingsPomodoro(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, err := newController(display)
	if err != nil {
		return err
	}

	cfg := currentSettings(c, display).Pomodoro
	if cmd.Flags().Changed("work") {
		cfg.WorkMinutes = workMinutes
	}
	if cmd.Flags().Changed("short-break") {
		cfg.ShortBreakMinutes = shortMinutes
	}
	if cmd.Flags().Changed("long-break") {
		cfg.LongBreakMinutes = longMinutes
	}
	if cmd.Flags().Changed("interval") {
		cfg.LongBreakInterval = longInterval
	}

	if err := dispatch(c, display, session.UpdatePomodoroSettings{Config: cfg}); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render("Pomodoro settings updated."))
	return nil
}

func runSettingsNotifications(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, err := newController(display)
	if err != nil {
		return err
	}

	cfg := currentSettings(c, display).Notifications
	if cmd.Flags().Changed("inactivity-alerts") {
		cfg.InactivityAlerts = inactivityAlerts
	}
	if cmd.Flags().Changed("inactivity-threshold") {
		cfg.InactivityThresholdMinutes = inactivityMinutes
	}
	if cmd.Flags().Changed("pomodoro-alerts") {
		cfg.PomodoroAlerts = pomodoroAlerts
	}
	if cmd.Flags().Changed("task-reminders") {
		cfg.TaskReminders = taskReminderAlerts
	}

	if err := dispatch(c, display, session.UpdateNotificationSettings{Config: cfg}); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render("Notification settings updated."))
	return nil
}

func runSettingsAddStatus(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, err := newController(display)
	if err != nil {
		return err
	}
	if err := dispatch(c, display, session.AddTaskStatus{Label: args[0]}); err != nil {
		return err
	}
	fmt.Printf("Status %q added.\n", args[0])
	return nil
}

func runSettingsAddEnvironment(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, err := newController(display)
	if err != nil {
		return err
	}
	if err := dispatch(c, display, session.AddEnvironment{Label: args[0]}); err != nil {
		return err
	}
	fmt.Printf("Environment %q added.\n", args[0])
	return nil
}
