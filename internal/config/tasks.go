package config

import (
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// tasksFile is the on-disk shape of the task list.
type tasksFile struct {
	Tasks []*models.Task `yaml:"tasks"`
}

// LoadTasksFile loads the task list from the given path. A missing file
// yields an empty list. A malformed file fails the whole load; individual
// records are not recovered.
func LoadTasksFile(path string) ([]*models.Task, error) {
	if !FileExists(path) {
		return []*models.Task{}, nil
	}

	var f tasksFile
	if err := LoadYAML(path, &f); err != nil {
		return nil, err
	}
	if f.Tasks == nil {
		return []*models.Task{}, nil
	}
	return f.Tasks, nil
}

// SaveTasksFile writes the full task list to the given path.
func SaveTasksFile(path string, tasks []*models.Task) error {
	return SaveYAML(path, tasksFile{Tasks: tasks})
}
