package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusdeck-io/focusdeck/internal/models"
)

func TestLoadSettingsFileMissingYieldsDefaults(t *testing.T) {
	s, err := LoadSettingsFile(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)

	assert.Equal(t, models.NewSettings(), s)
}

func TestLoadSettingsFilePartialFieldsFillDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("pomodoro:\n  work_minutes: 50\nenvironments:\n  - local\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, 50, s.Pomodoro.WorkMinutes)
	// Absent pomodoro fields fall back to defaults.
	assert.Equal(t, 5, s.Pomodoro.ShortBreakMinutes)
	assert.Equal(t, []string{"local"}, s.Environments)
	assert.Equal(t, models.DefaultTaskStatuses(), s.TaskStatuses)
	assert.Equal(t, models.DefaultNotifications(), s.Notifications)
}

func TestLoadSettingsFileMalformedIsDecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))

	_, err := LoadSettingsFile(path)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestTasksFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")

	first := models.NewTask("PROJ-1", "notes", "dev", "uat", []string{"a.go"})
	second := models.NewTask("", "", "dev", "dev", nil)
	require.NoError(t, SaveTasksFile(path, []*models.Task{first, second}))

	loaded, err := LoadTasksFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "PROJ-1", loaded[0].ID)
	assert.Equal(t, first.UID, loaded[0].UID)
	assert.Empty(t, loaded[1].ID)
}

func TestLoadTasksFileMissingYieldsEmptyList(t *testing.T) {
	tasks, err := LoadTasksFile(filepath.Join(t.TempDir(), "tasks.yaml"))
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSaveYAMLCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.yaml")

	require.NoError(t, SaveYAML(path, map[string]int{"n": 1}))
	assert.True(t, FileExists(path))
}

func TestLoadYAMLOrDefault(t *testing.T) {
	dir := t.TempDir()

	type record struct {
		Name string `yaml:"name"`
	}
	defaultFn := func() *record { return &record{Name: "default"} }

	missing, err := LoadYAMLOrDefault(filepath.Join(dir, "missing.yaml"), defaultFn)
	require.NoError(t, err)
	assert.Equal(t, "default", missing.Name)

	path := filepath.Join(dir, "present.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: loaded\n"), 0o644))
	present, err := LoadYAMLOrDefault(path, defaultFn)
	require.NoError(t, err)
	assert.Equal(t, "loaded", present.Name)
}
