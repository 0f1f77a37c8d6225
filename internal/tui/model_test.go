package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		display string
		want    int
	}{
		{"25:00", 1500},
		{"00:00", 0},
		{"00:59", 59},
		{"90:30", 5430},
		{"garbage", -1},
		{"", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseClock(tt.display), tt.display)
	}
}

func TestNextLabelCyclesAndWraps(t *testing.T) {
	set := []string{"dev", "code_review", "deployed"}

	assert.Equal(t, "code_review", nextLabel(set, "dev"))
	assert.Equal(t, "dev", nextLabel(set, "deployed"))
}

func TestNextLabelRetiredValueRestartsAtFirst(t *testing.T) {
	set := []string{"dev", "deployed"}

	assert.Equal(t, "dev", nextLabel(set, "qa"))
	assert.Equal(t, "qa", nextLabel(nil, "qa"))
}

func TestSettingsSectionMapping(t *testing.T) {
	assert.Equal(t, "pomodoro", Section("pomodoro.work"))
	assert.Equal(t, "notifications", Section("notify.threshold"))
	assert.Equal(t, "focus", Section("focus.sidebar"))
	assert.Equal(t, "", Section("unknown"))
}

func TestFileListOpensPickerOverTaskForm(t *testing.T) {
	m := NewModel(nil)
	m.taskForm = NewTaskForm("add", []string{"dev"}, []string{"dev"}, 80)
	m.overlay = overlayTaskForm

	m.Update(FileListMsg{Files: []string{"a.go", "b.go"}})
	assert.Equal(t, overlayFilePicker, m.overlay)

	// Selecting an entry attaches it and returns to the form.
	m.handleFilePickerKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, overlayTaskForm, m.overlay)
	require.NotNil(t, m.taskForm)
	assert.Equal(t, []string{"a.go"}, m.taskForm.Files())
}

func TestFilePickerEscReturnsToTaskForm(t *testing.T) {
	m := NewModel(nil)
	m.taskForm = NewTaskForm("edit", nil, nil, 80)
	m.overlay = overlayTaskForm

	m.Update(FileListMsg{Files: []string{"a.go"}})
	require.Equal(t, overlayFilePicker, m.overlay)

	m.handleFilePickerKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, overlayTaskForm, m.overlay)
	assert.Empty(t, m.taskForm.Files(), "closing without selecting attaches nothing")
}

func TestFileListOverOtherOverlaysIsDeferred(t *testing.T) {
	m := NewModel(nil)
	m.overlay = overlayHelp

	m.Update(FileListMsg{Files: []string{"a.go"}})

	assert.Equal(t, overlayHelp, m.overlay, "the help overlay keeps focus")
	assert.Equal(t, []string{"a.go"}, m.recentFiles)
}

func TestApplyTickTracksNewSessions(t *testing.T) {
	m := NewModel(nil)

	m.applyTick("25:00")
	assert.Equal(t, 1500, m.timerTotal)

	m.applyTick("24:59")
	assert.Equal(t, 1500, m.timerTotal)
	assert.Equal(t, 1499, m.timerRemaining)

	// Starting a break resets the baseline before its first tick arrives.
	m.timerRemaining = -1
	m.applyTick("05:00")
	assert.Equal(t, 300, m.timerTotal)
}
