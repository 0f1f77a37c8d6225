package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents one tracked unit of development work.
// Tasks are persisted together as an ordered list in ~/.focusdeck/tasks.yaml;
// list order is both the display order and the addressing order.
type Task struct {
	// UID is assigned once at creation and never changes. Positional
	// operations remain the public addressing scheme; the UID exists so
	// renderers can follow a task across inserts and deletes.
	UID string `yaml:"uid"`

	// ID is the user-supplied identifier (e.g. a ticket key). Not required
	// to be unique, though it usually is in practice.
	ID string `yaml:"id"`

	Notes         string   `yaml:"notes"`
	ModifiedFiles []string `yaml:"modified_files"`

	// CreatedAt is set once at creation and is immutable thereafter.
	CreatedAt time.Time `yaml:"created_at"`

	// Status and Environment are open string tags. The configured label
	// sets are advisory (used to populate pickers); values outside the
	// current sets still round-trip unchanged.
	Status      string `yaml:"status"`
	Environment string `yaml:"environment"`
}

// NewTask creates a task with CreatedAt set to now and a fresh UID.
func NewTask(id, notes, status, environment string, files []string) *Task {
	return &Task{
		UID:           uuid.NewString(),
		ID:            id,
		Notes:         notes,
		ModifiedFiles: files,
		CreatedAt:     time.Now().UTC(),
		Status:        status,
		Environment:   environment,
	}
}

// TaskPatch is a partial task update. Nil fields are left untouched.
// CreatedAt and UID are deliberately not representable here.
type TaskPatch struct {
	ID            *string
	Notes         *string
	ModifiedFiles []string
	Status        *string
	Environment   *string
}

// Apply merges the non-nil fields of the patch into the task.
func (p TaskPatch) Apply(t *Task) {
	if p.ID != nil {
		t.ID = *p.ID
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.ModifiedFiles != nil {
		t.ModifiedFiles = p.ModifiedFiles
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Environment != nil {
		t.Environment = *p.Environment
	}
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.ModifiedFiles != nil {
		c.ModifiedFiles = append([]string(nil), t.ModifiedFiles...)
	}
	return &c
}
