// Package task implements the ordered task repository.
package task

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/focusdeck-io/focusdeck/internal/config"
	"github.com/focusdeck-io/focusdeck/internal/log"
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// ErrOutOfRange is returned for position-addressed operations on a
// non-existent index. The stored sequence is left unchanged.
var ErrOutOfRange = errors.New("task position out of range")

// Store persists the full task sequence. Every mutating repository
// operation rewrites the whole sequence before reporting success.
type Store interface {
	Load() ([]*models.Task, error)
	Save(tasks []*models.Task) error
}

// FileStore persists tasks to a YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the task list. A missing file yields an empty list.
func (s *FileStore) Load() ([]*models.Task, error) {
	return config.LoadTasksFile(s.path)
}

// Save writes the full task list.
func (s *FileStore) Save(tasks []*models.Task) error {
	return config.SaveTasksFile(s.path, tasks)
}

// Repository owns the ordered task sequence. Insertion order is the display
// order and the addressing order. The repository is not safe for concurrent
// use; the session controller serializes access.
type Repository struct {
	store Store
	tasks []*models.Task
	log   *logrus.Entry
}

// NewRepository loads the persisted sequence and returns a repository over
// it. A load failure propagates; callers may fall back to Empty.
func NewRepository(store Store) (*Repository, error) {
	tasks, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Repository{store: store, tasks: tasks, log: log.New("tasks")}, nil
}

// Empty returns a repository with no tasks over the given store. Used when
// the persisted copy could not be decoded: the broken file is left in place
// until the first successful mutation overwrites it.
func Empty(store Store) *Repository {
	return &Repository{store: store, tasks: []*models.Task{}, log: log.New("tasks")}
}

// Len returns the number of tasks.
func (r *Repository) Len() int {
	return len(r.tasks)
}

// List returns a point-in-time copy of the sequence in insertion order.
func (r *Repository) List() []*models.Task {
	out := make([]*models.Task, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Add constructs a task with CreatedAt = now, appends it to the end of the
// sequence and persists. Empty strings and empty file lists are legal.
func (r *Repository) Add(id, notes, status, environment string, files []string) (*models.Task, error) {
	t := models.NewTask(id, notes, status, environment, files)

	next := append(append([]*models.Task(nil), r.tasks...), t)
	if err := r.store.Save(next); err != nil {
		return nil, err
	}
	r.tasks = next

	r.log.WithFields(logrus.Fields{"id": t.ID, "status": t.Status}).Debug("task added")
	return t.Clone(), nil
}

// Update merges the patch into the task at position and persists the full
// sequence. CreatedAt is never affected. Fails with ErrOutOfRange if
// position is not a valid existing index.
func (r *Repository) Update(position int, patch models.TaskPatch) (*models.Task, error) {
	if position < 0 || position >= len(r.tasks) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, position)
	}

	updated := r.tasks[position].Clone()
	patch.Apply(updated)

	next := append([]*models.Task(nil), r.tasks...)
	next[position] = updated
	if err := r.store.Save(next); err != nil {
		return nil, err
	}
	r.tasks = next

	r.log.WithFields(logrus.Fields{"position": position, "id": updated.ID}).Debug("task updated")
	return updated.Clone(), nil
}

// Delete removes the task at position, shifting later entries down by one,
// and persists the full sequence. Fails with ErrOutOfRange if invalid.
func (r *Repository) Delete(position int) error {
	if position < 0 || position >= len(r.tasks) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, position)
	}

	next := make([]*models.Task, 0, len(r.tasks)-1)
	next = append(next, r.tasks[:position]...)
	next = append(next, r.tasks[position+1:]...)
	if err := r.store.Save(next); err != nil {
		return err
	}
	r.tasks = next

	r.log.WithField("position", position).Debug("task deleted")
	return nil
}
