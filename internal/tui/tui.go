// Package tui implements the terminal panel: task list, settings form,
// countdown bar and focus-mode chrome, rendered with bubbletea.
package tui

import (
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/focusdeck-io/focusdeck/internal/config"
	"github.com/focusdeck-io/focusdeck/internal/log"
	"github.com/focusdeck-io/focusdeck/internal/notify"
	"github.com/focusdeck-io/focusdeck/internal/session"
	"github.com/focusdeck-io/focusdeck/internal/settings"
	"github.com/focusdeck-io/focusdeck/internal/task"
	"github.com/focusdeck-io/focusdeck/internal/watcher"
)

// programRef wraps the bubbletea program so controller callbacks started
// before program creation can still deliver messages safely.
type programRef struct {
	mu      sync.Mutex
	program *tea.Program
}

func (p *programRef) Set(program *tea.Program) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.program = program
}

// Send delivers a message to the program, dropping it when the program is
// not running yet.
func (p *programRef) Send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()
	if program != nil {
		program.Send(msg)
	}
}

// Run wires the stores, controller and workspace watcher together and runs
// the panel until quit.
func Run(debug bool) error {
	log.Setup(debug)

	if err := config.EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to prepare state directory: %w", err)
	}
	settingsPath, err := config.GlobalSettingsFile()
	if err != nil {
		return fmt.Errorf("failed to resolve settings path: %w", err)
	}
	tasksPath, err := config.GlobalTasksFile()
	if err != nil {
		return fmt.Errorf("failed to resolve tasks path: %w", err)
	}

	settingsStore := settings.NewStore(
		settings.Load(settingsPath),
		settings.NewFilePersister(settingsPath),
	)

	taskStore := task.NewFileStore(tasksPath)
	repo, err := task.NewRepository(taskStore)
	if err != nil {
		if !errors.Is(err, config.ErrDecode) {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		// Broken task file: start empty, leave the file in place until the
		// first successful write replaces it.
		log.New("tui").WithError(err).Warn("task file unreadable, starting empty")
		repo = task.Empty(taskStore)
	}

	program := &programRef{}
	display := &panelDisplay{program: program}

	// The watcher doubles as the activity signal; the controller does not
	// exist yet, so the callback resolves it late.
	var (
		controllerMu sync.Mutex
		controller   *session.Controller
	)
	onActivity := func() {
		controllerMu.Lock()
		c := controller
		controllerMu.Unlock()
		if c != nil {
			c.RecordActivity()
		}
	}

	var files session.FileLister
	if cwd, cwdErr := os.Getwd(); cwdErr == nil {
		w, werr := watcher.New(cwd, onActivity)
		if werr != nil {
			log.New("tui").WithError(werr).Warn("workspace watcher unavailable")
		} else if serr := w.Start(); serr != nil {
			log.New("tui").WithError(serr).Warn("workspace watcher failed to start")
		} else {
			files = w
			defer w.Stop()
		}
	}

	c, err := session.New(session.Config{
		Tasks:    repo,
		Settings: settingsStore,
		Display:  display,
		Host:     display,
		Notifier: notify.NewDesktop(),
		Files:    files,
	})
	if err != nil {
		return err
	}
	controllerMu.Lock()
	controller = c
	controllerMu.Unlock()

	p := tea.NewProgram(NewModel(c), tea.WithAltScreen())
	program.Set(p)

	_, err = p.Run()
	return err
}
