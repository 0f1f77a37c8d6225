// Package settings implements the typed settings store.
package settings

import (
	"github.com/sirupsen/logrus"

	"github.com/focusdeck-io/focusdeck/internal/config"
	"github.com/focusdeck-io/focusdeck/internal/log"
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// Persister writes the full settings record.
type Persister interface {
	Save(s *models.Settings) error
}

// FilePersister saves settings to a YAML file.
type FilePersister struct {
	path string
}

// NewFilePersister creates a persister backed by the given path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Save writes the full settings record.
func (p *FilePersister) Save(s *models.Settings) error {
	return config.SaveYAML(p.path, s)
}

// Load reads settings from the given path. Loading never fails: a missing
// file or missing fields resolve to defaults, and an unreadable file falls
// back wholly to defaults.
func Load(path string) *models.Settings {
	s, err := config.LoadSettingsFile(path)
	if err != nil {
		log.New("settings").WithError(err).Warn("settings unreadable, using defaults")
		return models.NewSettings()
	}
	return s
}

// Store holds the single process-wide settings record. It is not safe for
// concurrent use; the session controller serializes access.
type Store struct {
	current *models.Settings
	persist Persister
	log     *logrus.Entry
}

// NewStore creates a store over an already-loaded settings record.
func NewStore(initial *models.Settings, persist Persister) *Store {
	return &Store{current: initial, persist: persist, log: log.New("settings")}
}

// Current returns a copy of the full settings record.
func (s *Store) Current() *models.Settings {
	return s.current.Clone()
}

// Update merges the non-absent fields of the patch into the current record
// and persists. Scalar sub-records overwrite; the label-set fields are
// wholesale-replaced. It returns the new full record and whether the
// pomodoro sub-record changed.
func (s *Store) Update(patch models.SettingsPatch) (*models.Settings, bool, error) {
	next := s.current.Clone()
	pomodoroChanged := patch.Apply(next)

	if err := s.persist.Save(next); err != nil {
		return nil, false, err
	}
	s.current = next

	s.log.Debug("settings updated")
	return next.Clone(), pomodoroChanged, nil
}

// AddTaskStatus appends a label to the status set and persists. Duplicates
// are not checked.
func (s *Store) AddTaskStatus(label string) (*models.Settings, error) {
	next := append(append([]string(nil), s.current.TaskStatuses...), label)
	updated, _, err := s.Update(models.SettingsPatch{TaskStatuses: next})
	return updated, err
}

// AddEnvironment appends a label to the environment set and persists.
// Duplicates are not checked.
func (s *Store) AddEnvironment(label string) (*models.Settings, error) {
	next := append(append([]string(nil), s.current.Environments...), label)
	updated, _, err := s.Update(models.SettingsPatch{Environments: next})
	return updated, err
}
