package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/focusdeck-io/focusdeck/internal/models"
	"github.com/focusdeck-io/focusdeck/internal/session"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Manage the ordered task list. Tasks are addressed by their list position.`,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	RunE:  runTaskAdd,
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update [position]",
	Short: "Update the task at a position",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskUpdate,
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete [position]",
	Aliases: []string{"rm"},
	Short:   "Delete the task at a position",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

var (
	taskID    string
	taskNotes string
	taskState string
	taskEnv   string
	taskFiles string
)

func init() {
	for _, c := range []*cobra.Command{taskAddCmd, taskUpdateCmd} {
		c.Flags().StringVar(&taskID, "id", "", "ticket key (e.g. PROJ-42)")
		c.Flags().StringVar(&taskNotes, "notes", "", "free-form notes")
		c.Flags().StringVar(&taskState, "status", "", "status label")
		c.Flags().StringVar(&taskEnv, "env", "", "environment label")
		c.Flags().StringVar(&taskFiles, "files", "", "comma-separated modified files")
	}

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskUpdateCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	c, err := newController(display)
	if err != nil {
		return err
	}
	c.Dispatch(session.RequestSnapshot{})
	return display.Err()
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, err := newController(display)
	if err != nil {
		return err
	}

	status := taskState
	env := taskEnv
	current := currentSettings(c, display)
	if status == "" && len(current.TaskStatuses) > 0 {
		status = current.TaskStatuses[0]
	}
	if env == "" && len(current.Environments) > 0 {
		env = current.Environments[0]
	}

	if err := dispatch(c, display, session.AddTask{
		ID:          taskID,
		Notes:       taskNotes,
		Status:      status,
		Environment: env,
		Files:       splitFiles(taskFiles),
	}); err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render("Task added."))
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid position: %s", args[0])
	}

	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, cerr := newController(display)
	if cerr != nil {
		return cerr
	}

	// Only flags the user set become part of the patch.
	var patch models.TaskPatch
	if cmd.Flags().Changed("id") {
		patch.ID = &taskID
	}
	if cmd.Flags().Changed("notes") {
		patch.Notes = &taskNotes
	}
	if cmd.Flags().Changed("status") {
		patch.Status = &taskState
	}
	if cmd.Flags().Changed("env") {
		patch.Environment = &taskEnv
	}
	if cmd.Flags().Changed("files") {
		files := splitFiles(taskFiles)
		if files == nil {
			files = []string{} // --files "" clears the list
		}
		patch.ModifiedFiles = files
	}

	if err := dispatch(c, display, session.UpdateTask{Position: position, Patch: patch}); err != nil {
		return err
	}

	fmt.Printf("Task %d updated.\n", position)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid position: %s", args[0])
	}

	display := newConsoleDisplay()
	display.quietSnapshots = true
	c, cerr := newController(display)
	if cerr != nil {
		return cerr
	}

	if err := dispatch(c, display, session.DeleteTask{Position: position}); err != nil {
		return err
	}

	fmt.Printf("Task %d deleted.\n", position)
	return nil
}

func splitFiles(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var files []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}
