package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusdeck-io/focusdeck/internal/models"
	"github.com/focusdeck-io/focusdeck/internal/settings"
)

type memPersister struct {
	saved *models.Settings
	saves int
	fail  bool
}

func (p *memPersister) Save(s *models.Settings) error {
	if p.fail {
		return errors.New("write rejected")
	}
	p.saves++
	p.saved = s
	return nil
}

func newStore() (*settings.Store, *memPersister) {
	p := &memPersister{}
	return settings.NewStore(models.NewSettings(), p), p
}

func TestUpdatePomodoroKeepsOtherFields(t *testing.T) {
	store, p := newStore()

	cfg := models.DefaultPomodoro()
	cfg.WorkMinutes = 50
	updated, pomodoroChanged, err := store.Update(models.SettingsPatch{Pomodoro: &cfg})
	require.NoError(t, err)

	assert.True(t, pomodoroChanged)
	assert.Equal(t, 50, updated.Pomodoro.WorkMinutes)
	assert.Equal(t, models.DefaultTaskStatuses(), updated.TaskStatuses)
	assert.Equal(t, models.DefaultEnvironments(), updated.Environments)
	assert.Equal(t, models.DefaultFocusMode(), updated.FocusMode)
	assert.Equal(t, models.DefaultNotifications(), updated.Notifications)
	assert.Equal(t, 1, p.saves)
}

func TestUpdateReportsPomodoroUnchanged(t *testing.T) {
	store, _ := newStore()

	cfg := models.DefaultPomodoro()
	_, pomodoroChanged, err := store.Update(models.SettingsPatch{Pomodoro: &cfg})
	require.NoError(t, err)
	assert.False(t, pomodoroChanged, "identical sub-record is not a change")

	n := models.DefaultNotifications()
	n.TaskReminders = true
	_, pomodoroChanged, err = store.Update(models.SettingsPatch{Notifications: &n})
	require.NoError(t, err)
	assert.False(t, pomodoroChanged)
}

func TestLabelSetsAreWholesaleReplaced(t *testing.T) {
	store, _ := newStore()

	updated, _, err := store.Update(models.SettingsPatch{TaskStatuses: []string{"todo", "done"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"todo", "done"}, updated.TaskStatuses)
	assert.Equal(t, models.DefaultEnvironments(), updated.Environments)
}

func TestAddTaskStatusAppends(t *testing.T) {
	store, _ := newStore()

	updated, err := store.AddTaskStatus("qa")
	require.NoError(t, err)
	assert.Equal(t, append(models.DefaultTaskStatuses(), "qa"), updated.TaskStatuses)

	// Duplicates are not prevented.
	updated, err = store.AddTaskStatus("qa")
	require.NoError(t, err)
	assert.Equal(t, append(models.DefaultTaskStatuses(), "qa", "qa"), updated.TaskStatuses)
}

func TestAddEnvironmentAppends(t *testing.T) {
	store, _ := newStore()

	updated, err := store.AddEnvironment("staging")
	require.NoError(t, err)
	assert.Contains(t, updated.Environments, "staging")
}

func TestFailedPersistLeavesCurrentUnchanged(t *testing.T) {
	store, p := newStore()
	p.fail = true

	cfg := models.DefaultPomodoro()
	cfg.WorkMinutes = 50
	_, _, err := store.Update(models.SettingsPatch{Pomodoro: &cfg})
	assert.Error(t, err)
	assert.Equal(t, models.DefaultPomodoro(), store.Current().Pomodoro)
}

func TestCurrentReturnsCopy(t *testing.T) {
	store, _ := newStore()

	snapshot := store.Current()
	snapshot.TaskStatuses[0] = "mutated"
	assert.Equal(t, "dev", store.Current().TaskStatuses[0])
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := settings.Load(path)
	assert.Equal(t, models.NewSettings(), s)
}

func TestLoadFillsAbsentFieldsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pomodoro:\n  work_minutes: 50\n"), 0o644))

	s := settings.Load(path)
	assert.Equal(t, 50, s.Pomodoro.WorkMinutes)
	assert.Equal(t, models.DefaultPomodoro().ShortBreakMinutes, s.Pomodoro.ShortBreakMinutes)
	assert.Equal(t, models.DefaultTaskStatuses(), s.TaskStatuses)
	assert.Equal(t, models.DefaultNotifications(), s.Notifications)
}

func TestUpdateThenReloadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store := settings.NewStore(settings.Load(path), settings.NewFilePersister(path))

	cfg := models.DefaultPomodoro()
	cfg.WorkMinutes = 50
	_, _, err := store.Update(models.SettingsPatch{Pomodoro: &cfg})
	require.NoError(t, err)

	reloaded := settings.Load(path)
	assert.Equal(t, 50, reloaded.Pomodoro.WorkMinutes)
	assert.Equal(t, models.DefaultTaskStatuses(), reloaded.TaskStatuses)
	assert.Equal(t, models.DefaultFocusMode(), reloaded.FocusMode)
}
