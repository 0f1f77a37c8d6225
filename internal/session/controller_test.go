package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusdeck-io/focusdeck/internal/focus"
	"github.com/focusdeck-io/focusdeck/internal/models"
	"github.com/focusdeck-io/focusdeck/internal/session"
	"github.com/focusdeck-io/focusdeck/internal/settings"
	"github.com/focusdeck-io/focusdeck/internal/task"
	"github.com/focusdeck-io/focusdeck/internal/timer"
)

type memTaskStore struct {
	saved []*models.Task
}

func (s *memTaskStore) Load() ([]*models.Task, error)   { return s.saved, nil }
func (s *memTaskStore) Save(tasks []*models.Task) error { s.saved = tasks; return nil }

type memPersister struct{}

func (memPersister) Save(*models.Settings) error { return nil }

// recordDisplay records every outbound event in order.
type recordDisplay struct {
	taskSnapshots     [][]*models.Task
	settingsSnapshots []*models.Settings
	ticks             []string
	dones             int
	focusChanges      []bool
	fileLists         [][]string
	infos             []string
	errors            []string
}

func (d *recordDisplay) TasksSnapshot(tasks []*models.Task) {
	d.taskSnapshots = append(d.taskSnapshots, tasks)
}
func (d *recordDisplay) SettingsSnapshot(s *models.Settings) {
	d.settingsSnapshots = append(d.settingsSnapshots, s)
}
func (d *recordDisplay) TimerTick(display string) { d.ticks = append(d.ticks, display) }
func (d *recordDisplay) TimerDone()               { d.dones++ }
func (d *recordDisplay) FocusModeChanged(on bool) { d.focusChanges = append(d.focusChanges, on) }
func (d *recordDisplay) FileListSnapshot(f []string) {
	d.fileLists = append(d.fileLists, f)
}
func (d *recordDisplay) Info(msg string)  { d.infos = append(d.infos, msg) }
func (d *recordDisplay) Error(msg string) { d.errors = append(d.errors, msg) }

func (d *recordDisplay) lastTasks(t *testing.T) []*models.Task {
	t.Helper()
	require.NotEmpty(t, d.taskSnapshots)
	return d.taskSnapshots[len(d.taskSnapshots)-1]
}

type recordHost struct {
	directives []focus.Directive
}

func (h *recordHost) ApplyDirective(d focus.Directive) {
	h.directives = append(h.directives, d)
}

type staticFiles struct {
	files []string
}

func (f staticFiles) Files() []string { return f.files }

func newController(t *testing.T) (*session.Controller, *recordDisplay, *recordHost) {
	t.Helper()

	repo, err := task.NewRepository(&memTaskStore{})
	require.NoError(t, err)

	display := &recordDisplay{}
	host := &recordHost{}

	c, err := session.New(session.Config{
		Tasks:    repo,
		Settings: settings.NewStore(models.NewSettings(), memPersister{}),
		Display:  display,
		Host:     host,
		Files:    staticFiles{files: []string{"a.go", "b.go"}},
		TimerOpts: []timer.Option{
			timer.WithTickInterval(time.Hour),
			timer.WithPollInterval(time.Hour),
		},
	})
	require.NoError(t, err)
	return c, display, host
}

func TestRequestSnapshotPushesBoth(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.RequestSnapshot{})

	require.Len(t, display.taskSnapshots, 1)
	assert.Empty(t, display.taskSnapshots[0])
	require.Len(t, display.settingsSnapshots, 1)
	assert.Equal(t, models.NewSettings(), display.settingsSnapshots[0])
}

func TestAddTaskPushesSnapshot(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.AddTask{ID: "PROJ-1", Status: "dev", Environment: "dev"})

	tasks := display.lastTasks(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, "PROJ-1", tasks[0].ID)
	assert.Empty(t, display.errors)
}

func TestUpdateTaskOutOfRangeSurfacesError(t *testing.T) {
	c, display, _ := newController(t)

	status := "deployed"
	c.Dispatch(session.UpdateTask{Position: 3, Patch: models.TaskPatch{Status: &status}})

	require.Len(t, display.errors, 1)
	assert.Contains(t, display.errors[0], "No such task")
	assert.Empty(t, display.taskSnapshots, "failed intents push no snapshot")
}

func TestDeleteTaskPushesSnapshot(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.AddTask{ID: "PROJ-1"})
	c.Dispatch(session.AddTask{ID: "PROJ-2"})
	c.Dispatch(session.DeleteTask{Position: 0})

	tasks := display.lastTasks(t)
	require.Len(t, tasks, 1)
	assert.Equal(t, "PROJ-2", tasks[0].ID)
}

func TestAddTaskStatusPushesSettings(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.AddTaskStatus{Label: "qa"})

	require.Len(t, display.settingsSnapshots, 1)
	assert.Contains(t, display.settingsSnapshots[0].TaskStatuses, "qa")
}

func TestAddEnvironmentPushesSettings(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.AddEnvironment{Label: "staging"})

	require.Len(t, display.settingsSnapshots, 1)
	assert.Contains(t, display.settingsSnapshots[0].Environments, "staging")
}

func TestStartTimerEmitsFirstTick(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.StartTimer{})

	require.NotEmpty(t, display.ticks)
	assert.Equal(t, "25:00", display.ticks[0])
	assert.True(t, c.TimerRunning())
}

func TestStartBreakUsesBreakDurations(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.StartBreak{})
	c.Dispatch(session.StartBreak{Long: true})

	require.Len(t, display.ticks, 2)
	assert.Equal(t, "05:00", display.ticks[0])
	assert.Equal(t, "15:00", display.ticks[1])
}

func TestPomodoroChangeRestartsRunningTimer(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.StartTimer{})
	require.Equal(t, []string{"25:00"}, display.ticks)

	cfg := models.DefaultPomodoro()
	cfg.WorkMinutes = 50
	c.Dispatch(session.UpdatePomodoroSettings{Config: cfg})

	assert.Equal(t, []string{"25:00", "50:00"}, display.ticks, "running timer restarts with new duration")
	assert.Contains(t, display.infos, "Work timer restarted with the new duration")
}

func TestPomodoroChangeWithIdleTimerDoesNotStart(t *testing.T) {
	c, display, _ := newController(t)

	cfg := models.DefaultPomodoro()
	cfg.WorkMinutes = 50
	c.Dispatch(session.UpdatePomodoroSettings{Config: cfg})

	assert.Empty(t, display.ticks)
	assert.False(t, c.TimerRunning())
}

func TestToggleFocusModeTwice(t *testing.T) {
	c, display, host := newController(t)

	c.Dispatch(session.ToggleFocusMode{})
	c.Dispatch(session.ToggleFocusMode{})

	assert.Equal(t, []bool{true, false}, display.focusChanges)
	assert.Contains(t, display.infos, "Focus mode enabled")
	assert.Contains(t, display.infos, "Focus mode disabled")

	// Default config hides five surfaces; two toggles apply each twice.
	require.Len(t, host.directives, 10)
	assert.False(t, host.directives[0].Visible)
	assert.True(t, host.directives[5].Visible)
}

func TestFocusFlagsReadAtToggleTime(t *testing.T) {
	c, _, host := newController(t)

	c.Dispatch(session.UpdateFocusModeSettings{Config: models.FocusModeConfig{HideMinimap: true}})
	c.Dispatch(session.ToggleFocusMode{})

	require.Len(t, host.directives, 1)
	assert.Equal(t, focus.SurfaceMinimap, host.directives[0].Surface)
}

func TestRequestFileList(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(session.RequestFileList{})

	require.Len(t, display.fileLists, 1)
	assert.Equal(t, []string{"a.go", "b.go"}, display.fileLists[0])
}

// fakeClock is a settable wall clock safe for the engine goroutine.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// completionDisplay closes done when the controller signals completion; the
// close happens-after all other display calls for the session, so reading
// the embedded records after <-done is safe.
type completionDisplay struct {
	recordDisplay
	done chan struct{}
}

func (d *completionDisplay) TimerDone() { close(d.done) }

func TestTimerCompletionSignaledAfterNotifications(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	display := &completionDisplay{done: make(chan struct{})}

	repo, err := task.NewRepository(&memTaskStore{})
	require.NoError(t, err)

	c, err := session.New(session.Config{
		Tasks:    repo,
		Settings: settings.NewStore(models.NewSettings(), memPersister{}),
		Display:  display,
		TimerOpts: []timer.Option{
			timer.WithClock(clock),
			timer.WithTickInterval(5 * time.Millisecond),
			timer.WithPollInterval(time.Hour),
		},
	})
	require.NoError(t, err)

	c.Dispatch(session.StartTimer{})
	clock.Advance(26 * time.Minute)

	select {
	case <-display.done:
	case <-time.After(5 * time.Second):
		t.Fatal("completion was never signaled")
	}

	assert.False(t, c.TimerRunning())
	assert.Equal(t, "00:00", display.ticks[len(display.ticks)-1])
	assert.Contains(t, display.infos, "Work session complete. Time for a break.")
}

func TestUnknownIntentIsIgnored(t *testing.T) {
	c, display, _ := newController(t)

	c.Dispatch(struct{ Bogus int }{})

	assert.Empty(t, display.errors)
	assert.Empty(t, display.taskSnapshots)
}

func TestNotificationSettingsUpdate(t *testing.T) {
	c, display, _ := newController(t)

	cfg := models.DefaultNotifications()
	cfg.InactivityThresholdMinutes = 45
	c.Dispatch(session.UpdateNotificationSettings{Config: cfg})

	require.Len(t, display.settingsSnapshots, 1)
	assert.Equal(t, 45, display.settingsSnapshots[0].Notifications.InactivityThresholdMinutes)
	assert.Empty(t, display.ticks, "notification changes never touch the timer")
}
