package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/focusdeck-io/focusdeck/internal/focus"
	"github.com/focusdeck-io/focusdeck/internal/models"
	"github.com/focusdeck-io/focusdeck/internal/session"
)

type tabID int

const (
	tabTasks tabID = iota
	tabSettings
)

type overlayID int

const (
	overlayNone overlayID = iota
	overlayTaskForm
	overlayHelp
	overlayFilePicker
)

const messageTTL = 4 * time.Second

// Model is the root bubbletea model. It renders controller snapshots and
// translates key presses into intents; it never touches the stores directly.
type Model struct {
	controller *session.Controller

	activeTab tabID
	overlay   overlayID

	taskList     *TaskList
	taskForm     *TaskForm
	settingsForm *SettingsForm
	settings     *models.Settings

	// visible tracks per-surface visibility as directed by focus mode.
	visible      map[focus.Surface]bool
	focusEnabled bool

	timerDisplay   string
	timerRemaining int
	timerTotal     int
	progress       progress.Model

	recentFiles []string
	fileCursor  int

	confirmDelete int // pending delete position, -1 when none
	infoMessage   string
	errMessage    string

	width  int
	height int
}

// NewModel creates the root model bound to a controller.
func NewModel(controller *session.Controller) *Model {
	visible := map[focus.Surface]bool{
		focus.SurfaceSidebar:     true,
		focus.SurfaceActivityBar: true,
		focus.SurfaceStatusBar:   true,
		focus.SurfacePanel:       true,
		focus.SurfaceMinimap:     true,
		focus.SurfaceLineNumbers: true,
	}
	return &Model{
		controller:     controller,
		taskList:       NewTaskList(),
		settingsForm:   NewSettingsForm(),
		visible:        visible,
		progress:       progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		timerRemaining: -1,
		confirmDelete:  -1,
	}
}

// Init requests the first snapshots.
func (m *Model) Init() tea.Cmd {
	return dispatchCmd(m.controller, session.RequestSnapshot{})
}

// Update handles inbound messages and key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.taskList.SetSize(msg.Width*2/3, m.bodyHeight())
		m.settingsForm.SetSize(msg.Width, m.bodyHeight())
		return m, nil

	case tea.KeyMsg:
		m.controller.RecordActivity()
		return m.handleKey(msg)

	case TasksSnapshotMsg:
		m.taskList.SetTasks(msg.Tasks)
		return m, nil

	case SettingsSnapshotMsg:
		m.settings = msg.Settings
		m.settingsForm.LoadFromSettings(msg.Settings)
		return m, nil

	case TimerTickMsg:
		m.applyTick(msg.Display)
		return m, nil

	case TimerDoneMsg:
		m.timerRemaining = -1 // the next session's first tick resets the gauge
		return m, nil

	case FocusModeChangedMsg:
		m.focusEnabled = msg.Enabled
		return m, nil

	case DirectiveMsg:
		m.visible[msg.Directive.Surface] = msg.Directive.Visible
		return m, nil

	case FileListMsg:
		m.recentFiles = msg.Files
		m.fileCursor = 0
		// The picker opens from the task list or over an open task form;
		// selecting an entry returns to whichever requested it.
		if m.overlay == overlayNone || m.overlay == overlayTaskForm {
			m.overlay = overlayFilePicker
		}
		return m, nil

	case InfoMsg:
		m.infoMessage = msg.Message
		m.errMessage = ""
		return m, clearMessageAfter(messageTTL)

	case ErrorMsg:
		m.errMessage = msg.Message
		m.infoMessage = ""
		return m, clearMessageAfter(messageTTL)

	case clearMessageMsg:
		m.infoMessage = ""
		m.errMessage = ""
		return m, nil
	}

	return m, nil
}

// applyTick updates the countdown state. A remaining value above the last
// seen one means a new session started, which resets the progress baseline.
func (m *Model) applyTick(display string) {
	m.timerDisplay = display
	secs := parseClock(display)
	if secs < 0 {
		return
	}
	if secs > m.timerRemaining {
		m.timerTotal = secs
	}
	m.timerRemaining = secs
}

func parseClock(display string) int {
	parts := strings.SplitN(display, ":", 2)
	if len(parts) != 2 {
		return -1
	}
	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	return mins*60 + secs
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture input before anything else.
	switch m.overlay {
	case overlayTaskForm:
		return m.handleTaskFormKey(msg)
	case overlayHelp:
		if msg.String() == "esc" || msg.String() == "?" || msg.String() == "q" {
			m.overlay = overlayNone
		}
		return m, nil
	case overlayFilePicker:
		return m.handleFilePickerKey(msg)
	}

	if m.confirmDelete >= 0 {
		return m.handleConfirmKey(msg)
	}

	if m.activeTab == tabSettings && m.settingsForm.IsEditing() {
		return m.handleSettingsEditKey(msg)
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, globalKeys.Help):
		m.overlay = overlayHelp
		return m, nil
	case key.Matches(msg, globalKeys.Timer):
		m.timerRemaining = -1 // next tick is a new session's first
		return m, dispatchCmd(m.controller, session.StartTimer{})
	case key.Matches(msg, globalKeys.Break):
		m.timerRemaining = -1
		return m, dispatchCmd(m.controller, session.StartBreak{Long: msg.String() == "B"})
	case key.Matches(msg, globalKeys.Focus):
		return m, dispatchCmd(m.controller, session.ToggleFocusMode{})
	case key.Matches(msg, tabKeys.Tasks):
		m.activeTab = tabTasks
		return m, nil
	case key.Matches(msg, tabKeys.Settings):
		m.activeTab = tabSettings
		return m, nil
	}

	if m.activeTab == tabSettings {
		return m.handleSettingsKey(msg)
	}
	return m.handleTaskListKey(msg)
}

func (m *Model) handleTaskListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, taskListKeys.Up):
		m.taskList.MoveUp()
	case key.Matches(msg, taskListKeys.Down):
		m.taskList.MoveDown()

	case key.Matches(msg, taskListKeys.Add):
		m.taskForm = NewTaskForm("add", m.statuses(), m.environments(), m.width)
		m.overlay = overlayTaskForm

	case key.Matches(msg, taskListKeys.Edit):
		t := m.taskList.Selected()
		if t == nil {
			return m, nil
		}
		m.taskForm = NewTaskForm("edit", m.statuses(), m.environments(), m.width)
		m.taskForm.PreFill(m.taskList.Cursor(), t.ID, t.Notes, t.ModifiedFiles, t.Status, t.Environment)
		m.overlay = overlayTaskForm

	case key.Matches(msg, taskListKeys.Delete):
		if m.taskList.Cursor() >= 0 {
			m.confirmDelete = m.taskList.Cursor()
		}

	case key.Matches(msg, taskListKeys.Status):
		if t := m.taskList.Selected(); t != nil {
			next := nextLabel(m.statuses(), t.Status)
			patch := models.TaskPatch{Status: &next}
			return m, dispatchCmd(m.controller, session.UpdateTask{Position: m.taskList.Cursor(), Patch: patch})
		}

	case key.Matches(msg, taskListKeys.Env):
		if t := m.taskList.Selected(); t != nil {
			next := nextLabel(m.environments(), t.Environment)
			patch := models.TaskPatch{Environment: &next}
			return m, dispatchCmd(m.controller, session.UpdateTask{Position: m.taskList.Cursor(), Patch: patch})
		}

	case key.Matches(msg, taskListKeys.Files):
		return m, dispatchCmd(m.controller, session.RequestFileList{})
	}

	return m, nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		position := m.confirmDelete
		m.confirmDelete = -1
		return m, dispatchCmd(m.controller, session.DeleteTask{Position: position})
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmDelete = -1
	}
	return m, nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, settingsKeys.Up):
		m.settingsForm.MoveUp()
	case key.Matches(msg, settingsKeys.Down):
		m.settingsForm.MoveDown()
	case key.Matches(msg, settingsKeys.Toggle):
		if changed, rowKey := m.settingsForm.Toggle(); changed {
			return m, m.dispatchSettingsSection(rowKey)
		}
	case key.Matches(msg, settingsKeys.Enter):
		m.settingsForm.StartEdit()
	}
	return m, nil
}

func (m *Model) handleSettingsEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if changed, rowKey := m.settingsForm.FinishEdit(); changed {
			return m, m.dispatchSettingsSection(rowKey)
		}
		return m, nil
	case "esc":
		m.settingsForm.CancelEdit()
		return m, nil
	}

	var cmd tea.Cmd
	*m.settingsForm.InputModel(), cmd = m.settingsForm.InputModel().Update(msg)
	return m, cmd
}

// dispatchSettingsSection sends the whole edited sub-record for the section
// the row belongs to.
func (m *Model) dispatchSettingsSection(rowKey string) tea.Cmd {
	switch Section(rowKey) {
	case "pomodoro":
		return dispatchCmd(m.controller, session.UpdatePomodoroSettings{Config: m.settingsForm.Pomodoro()})
	case "notifications":
		return dispatchCmd(m.controller, session.UpdateNotificationSettings{Config: m.settingsForm.Notifications()})
	case "focus":
		return dispatchCmd(m.controller, session.UpdateFocusModeSettings{Config: m.settingsForm.FocusMode()})
	}
	return nil
}

func (m *Model) handleTaskFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, overlayKeys.Cancel):
		m.overlay = overlayNone
		m.taskForm = nil
		return m, nil

	case key.Matches(msg, overlayKeys.Save):
		return m.submitTaskForm()

	case key.Matches(msg, overlayKeys.Tab):
		m.taskForm.FocusNext()
		return m, nil

	case key.Matches(msg, overlayKeys.Prev):
		m.taskForm.FocusPrev()
		return m, nil
	}

	// Space cycles when a label field is focused, otherwise it is text.
	if msg.String() == " " && m.taskForm.FocusIndex() >= 3 {
		m.taskForm.Cycle()
		return m, nil
	}
	if msg.String() == "m" && m.taskForm.FocusIndex() >= 3 {
		return m, dispatchCmd(m.controller, session.RequestFileList{})
	}

	var cmd tea.Cmd
	switch m.taskForm.FocusIndex() {
	case 0:
		*m.taskForm.IDInput(), cmd = m.taskForm.IDInput().Update(msg)
	case 1:
		*m.taskForm.NotesArea(), cmd = m.taskForm.NotesArea().Update(msg)
	case 2:
		*m.taskForm.FilesInput(), cmd = m.taskForm.FilesInput().Update(msg)
	}
	return m, cmd
}

func (m *Model) submitTaskForm() (tea.Model, tea.Cmd) {
	tf := m.taskForm
	m.overlay = overlayNone
	m.taskForm = nil

	if tf.Mode() == "add" {
		return m, dispatchCmd(m.controller, session.AddTask{
			ID:          tf.ID(),
			Notes:       tf.Notes(),
			Status:      tf.Status(),
			Environment: tf.Environment(),
			Files:       tf.Files(),
		})
	}

	id := tf.ID()
	notes := tf.Notes()
	status := tf.Status()
	env := tf.Environment()
	files := tf.Files()
	if files == nil {
		files = []string{} // clearing the field is a real update
	}
	patch := models.TaskPatch{
		ID:            &id,
		Notes:         &notes,
		Status:        &status,
		Environment:   &env,
		ModifiedFiles: files,
	}
	return m, dispatchCmd(m.controller, session.UpdateTask{Position: tf.Position(), Patch: patch})
}

func (m *Model) handleFilePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.overlay = overlayNone
		if m.taskForm != nil {
			m.overlay = overlayTaskForm
		}
	case "up", "k":
		if m.fileCursor > 0 {
			m.fileCursor--
		}
	case "down", "j":
		if m.fileCursor < len(m.recentFiles)-1 {
			m.fileCursor++
		}
	case "enter":
		if m.fileCursor >= len(m.recentFiles) {
			return m, nil
		}
		path := m.recentFiles[m.fileCursor]
		if m.taskForm != nil {
			m.taskForm.AppendFile(path)
			m.overlay = overlayTaskForm
			return m, nil
		}
		// No form open: attach to the selected task.
		m.overlay = overlayNone
		if t := m.taskList.Selected(); t != nil {
			files := append(append([]string{}, t.ModifiedFiles...), path)
			patch := models.TaskPatch{ModifiedFiles: files}
			return m, dispatchCmd(m.controller, session.UpdateTask{Position: m.taskList.Cursor(), Patch: patch})
		}
	}
	return m, nil
}

func (m *Model) statuses() []string {
	if m.settings == nil {
		return models.DefaultTaskStatuses()
	}
	return m.settings.TaskStatuses
}

func (m *Model) environments() []string {
	if m.settings == nil {
		return models.DefaultEnvironments()
	}
	return m.settings.Environments
}

func (m *Model) bodyHeight() int {
	h := m.height - 4 // header, minimap, timer bar, status bar
	if h < 1 {
		h = 1
	}
	return h
}

// View assembles the layout, honoring the focus-mode surface directives.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var sections []string
	if m.visible[focus.SurfaceActivityBar] {
		sections = append(sections, m.renderHeader())
	}
	if m.visible[focus.SurfaceMinimap] && m.activeTab == tabTasks {
		sections = append(sections, m.renderMinimap())
	}

	sections = append(sections, m.renderBody())

	if m.visible[focus.SurfacePanel] {
		sections = append(sections, m.renderTimerBar())
	}
	if m.visible[focus.SurfaceStatusBar] {
		sections = append(sections, m.renderStatusBar())
	}

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	switch m.overlay {
	case overlayTaskForm:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.taskForm.View())
	case overlayHelp:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderHelp())
	case overlayFilePicker:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderFilePicker())
	}
	return view
}

func (m *Model) renderBody() string {
	if m.activeTab == tabSettings {
		return lipgloss.NewStyle().Height(m.bodyHeight()).Render(m.settingsForm.View())
	}

	m.taskList.ShowNumbers(m.visible[focus.SurfaceLineNumbers])

	listWidth := m.width
	if m.visible[focus.SurfaceSidebar] {
		listWidth = m.width * 2 / 3
	}
	m.taskList.SetSize(listWidth, m.bodyHeight())

	list := lipgloss.NewStyle().Width(listWidth).Height(m.bodyHeight()).Render(m.taskList.View())
	if !m.visible[focus.SurfaceSidebar] {
		return list
	}

	detail := lipgloss.NewStyle().Height(m.bodyHeight()).Render(m.taskList.DetailView(m.width - listWidth - 2))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
}

// renderMinimap draws one glyph per task, marking the selected position.
func (m *Model) renderMinimap() string {
	n := m.taskList.Len()
	if n == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" ")
	for i := 0; i < n; i++ {
		if i == m.taskList.Cursor() {
			b.WriteString(keyStyle.Render("●"))
		} else {
			b.WriteString(hintStyle.Render("·"))
		}
	}
	return b.String()
}
