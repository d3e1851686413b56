// Package tui provides the terminal gradient editor.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/alkime/gradients/internal/clipboard"
	"github.com/alkime/gradients/internal/tui/components/swatch"
	"github.com/alkime/gradients/internal/tui/style"
	"github.com/alkime/gradients/pkg/gradient"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoClipboard is reported when copy is requested without a clipboard.
var ErrNoClipboard = errors.New("no clipboard configured")

// CopiedFor is how long the "copied" notice stays up.
const CopiedFor = 2 * time.Second

const (
	positionStep    = 1
	positionFarStep = 10
	opacitySteps    = 5 // 5 x OpacityRange.Step
	angleStep       = 5
	centerStep      = 5
	minPreviewWidth = 10
)

// CopiedMsg reports a successful copy of the declaration.
type CopiedMsg struct{}

// CopyFailedMsg reports a failed copy.
type CopyFailedMsg struct {
	Err error
}

// CopyResetMsg clears the "copied" notice.
type CopyResetMsg struct {
	seq int
}

// Config holds the editor's startup settings.
type Config struct {
	Store         gradient.Store
	Clipboard     clipboard.Clipboard
	PreviewWidth  int
	PreviewHeight int
}

// Model is the gradient editor.
type Model struct {
	store    gradient.Store
	clip     clipboard.Clipboard
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	preview  swatch.Model
	strip    swatch.Model
	selected gradient.StopID
	editing  bool
	copied   bool
	copySeq  int
	copyErr  error
}

// New creates the editor with the first stop selected.
func New(cfg Config) Model {
	input := textinput.New()
	input.Prompt = "color: "
	input.CharLimit = 9
	input.Placeholder = "#rrggbb"

	m := Model{
		store:   cfg.Store,
		clip:    cfg.Clipboard,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   input,
		preview: swatch.NewPreview(cfg.PreviewWidth, cfg.PreviewHeight),
		strip:   swatch.NewStrip(cfg.PreviewWidth, 1),
	}

	if stops := m.store.Stops(); len(stops) > 0 {
		m.selected = stops[0].ID
	}

	return m.refresh()
}

// Store returns the current stops and configuration.
func (m Model) Store() gradient.Store {
	return m.store
}

// Selected returns the id of the selected stop.
func (m Model) Selected() gradient.StopID {
	return m.selected
}

// Copied reports whether the "copied" notice is showing.
func (m Model) Copied() bool {
	return m.copied
}

// Editing reports whether the color input is open.
func (m Model) Editing() bool {
	return m.editing
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := max(minPreviewWidth, msg.Width-2)
		m.preview = m.preview.SetSize(width, previewHeight(m.preview))
		m.strip = m.strip.SetSize(width, 1)
		m.help.Width = msg.Width

		return m.refresh(), nil

	case CopiedMsg:
		m.copied = true
		m.copyErr = nil
		m.copySeq++
		seq := m.copySeq

		return m, tea.Tick(CopiedFor, func(time.Time) tea.Msg {
			return CopyResetMsg{seq: seq}
		})

	case CopyFailedMsg:
		slog.Warn("Failed to copy declaration", "error", msg.Err)
		m.copied = false
		m.copyErr = msg.Err

		return m, nil

	case CopyResetMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}

		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		if m.editing {
			return m.updateEditing(msg)
		}

		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		if value != "" {
			m.store = m.store.Update(m.selected, gradient.FieldColor, value)
			slog.Debug("Stop color changed", "id", m.selected, "color", value)
		}
		m.editing = false
		m.input.Blur()

		return m.refresh(), nil

	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

//nolint:cyclop,funlen // one case per key binding
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.store.Config()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m = m.moveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		m = m.moveSelection(1)

	case key.Matches(msg, m.keys.Add):
		var id gradient.StopID
		m.store, id = m.store.Add()
		m.selected = id
		slog.Debug("Stop added", "id", id)

	case key.Matches(msg, m.keys.Remove):
		m = m.removeSelected()

	case key.Matches(msg, m.keys.Left):
		m = m.nudgePosition(-positionStep)

	case key.Matches(msg, m.keys.Right):
		m = m.nudgePosition(positionStep)

	case key.Matches(msg, m.keys.FarLeft):
		m = m.nudgePosition(-positionFarStep)

	case key.Matches(msg, m.keys.FarRight):
		m = m.nudgePosition(positionFarStep)

	case key.Matches(msg, m.keys.OpacityDown):
		m = m.nudgeOpacity(-opacitySteps)

	case key.Matches(msg, m.keys.OpacityUp):
		m = m.nudgeOpacity(opacitySteps)

	case key.Matches(msg, m.keys.EditColor):
		stop, ok := m.store.Stop(m.selected)
		if !ok {
			return m, nil
		}
		m.editing = true
		m.input.SetValue(stop.Color)
		m.input.CursorEnd()
		cmd := m.input.Focus()

		return m, cmd

	case key.Matches(msg, m.keys.Settle):
		m.store = m.store.Settle()

	case key.Matches(msg, m.keys.ToggleType):
		if cfg.Type == gradient.Radial {
			cfg.Type = gradient.Linear
		} else {
			cfg.Type = gradient.Radial
		}
		m.store = m.store.SetConfig(cfg)

	case key.Matches(msg, m.keys.AngleDown), key.Matches(msg, m.keys.AngleUp):
		if cfg.Type != gradient.Linear {
			return m, nil
		}
		step := angleStep
		if key.Matches(msg, m.keys.AngleDown) {
			step = -angleStep
		}
		cfg.Angle = gradient.AngleRange.Nudge(cfg.Angle, step)
		m.store = m.store.SetConfig(cfg)

	case key.Matches(msg, m.keys.ToggleShape):
		if cfg.Type != gradient.Radial {
			return m, nil
		}
		if cfg.Shape == gradient.Ellipse {
			cfg.Shape = gradient.Circle
		} else {
			cfg.Shape = gradient.Ellipse
		}
		m.store = m.store.SetConfig(cfg)

	case key.Matches(msg, m.keys.CenterLeft, m.keys.CenterRight, m.keys.CenterUp, m.keys.CenterDown):
		if cfg.Type != gradient.Radial {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.CenterLeft):
			cfg.CenterX = gradient.PositionRange.Nudge(cfg.CenterX, -centerStep)
		case key.Matches(msg, m.keys.CenterRight):
			cfg.CenterX = gradient.PositionRange.Nudge(cfg.CenterX, centerStep)
		case key.Matches(msg, m.keys.CenterUp):
			cfg.CenterY = gradient.PositionRange.Nudge(cfg.CenterY, -centerStep)
		default:
			cfg.CenterY = gradient.PositionRange.Nudge(cfg.CenterY, centerStep)
		}
		m.store = m.store.SetConfig(cfg)

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCmd()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil

	default:
		return m, nil
	}

	return m.refresh(), nil
}

// moveSelection settles a pending reorder and moves the cursor by delta.
func (m Model) moveSelection(delta int) Model {
	m.store = m.store.Settle()

	stops := m.store.Stops()
	if len(stops) == 0 {
		return m
	}

	i := slices.IndexFunc(stops, func(s gradient.ColorStop) bool { return s.ID == m.selected })
	i = max(0, min(len(stops)-1, i+delta))
	m.selected = stops[i].ID

	return m
}

// removeSelected deletes the selected stop and selects its neighbor.
func (m Model) removeSelected() Model {
	stops := m.store.Stops()
	i := slices.IndexFunc(stops, func(s gradient.ColorStop) bool { return s.ID == m.selected })

	next := m.store.Remove(m.selected)
	if next.Len() == m.store.Len() {
		return m
	}

	slog.Debug("Stop removed", "id", m.selected)
	m.store = next

	remaining := m.store.Stops()
	m.selected = remaining[max(0, min(len(remaining)-1, i))].ID

	return m
}

func (m Model) nudgePosition(steps int) Model {
	stop, ok := m.store.Stop(m.selected)
	if !ok {
		return m
	}

	pos := gradient.PositionRange.Nudge(stop.Position, steps)
	m.store = m.store.Update(m.selected, gradient.FieldPosition, pos)

	return m
}

func (m Model) nudgeOpacity(steps int) Model {
	stop, ok := m.store.Stop(m.selected)
	if !ok {
		return m
	}

	opacity := gradient.OpacityRange.Nudge(stop.Opacity, steps)
	opacity = math.Round(opacity*100) / 100
	m.store = m.store.Update(m.selected, gradient.FieldOpacity, opacity)

	return m
}

func (m Model) copyCmd() tea.Cmd {
	clip := m.clip
	text := m.store.Declaration()

	return func() tea.Msg {
		if clip == nil {
			return CopyFailedMsg{Err: ErrNoClipboard}
		}

		if err := clip.Copy(text); err != nil {
			return CopyFailedMsg{Err: err}
		}

		return CopiedMsg{}
	}
}

// refresh pushes the store into the preview components.
func (m Model) refresh() Model {
	stops := m.store.Stops()
	cfg := m.store.Config()

	m.preview = m.preview.SetGradient(stops, cfg)
	m.strip = m.strip.SetGradient(stops, cfg)

	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(style.Title.Render("Gradient Composer"))
	sb.WriteString("\n\n")

	sb.WriteString(m.settingsView())
	sb.WriteString("\n")
	sb.WriteString(style.Preview.Render(m.preview.View()))
	sb.WriteString("\n\n")

	sb.WriteString(style.Section.Render("Stops"))
	sb.WriteString("\n")
	sb.WriteString(style.Preview.Render(m.strip.View()))
	sb.WriteString("\n")
	sb.WriteString(m.stopsView())
	sb.WriteString("\n")

	if m.editing {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(style.Section.Render("CSS"))
	sb.WriteString("\n")
	sb.WriteString(style.Code.Render(m.store.Declaration()))
	sb.WriteString("\n")

	switch {
	case m.copied:
		sb.WriteString(style.Success.Render("Copied!"))
	case m.copyErr != nil:
		sb.WriteString(style.Error.Render("Copy failed: " + m.copyErr.Error()))
	}
	sb.WriteString("\n")

	sb.WriteString(style.Help.Render(m.help.View(m.keys)))

	return sb.String()
}

func (m Model) settingsView() string {
	cfg := m.store.Config()

	parts := []string{labeled("Type", string(cfg.Type))}
	if cfg.Type == gradient.Radial {
		parts = append(parts,
			labeled("Shape", string(cfg.Shape)),
			labeled("Center", fmt.Sprintf("%d%% %d%%", cfg.CenterX, cfg.CenterY)))
	} else {
		parts = append(parts, labeled("Angle", fmt.Sprintf("%d°", cfg.Angle)))
	}

	return strings.Join(parts, "  ")
}

func (m Model) stopsView() string {
	stops := m.store.Stops()
	rows := make([]string, 0, len(stops))

	for _, stop := range stops {
		row := fmt.Sprintf("%-9s opacity %.2f  at %3d%%", stop.Color, stop.Opacity, stop.Position)

		if stop.ID == m.selected {
			rows = append(rows, style.Cursor.Render(">")+" "+style.Selected.Render(row))
		} else {
			rows = append(rows, "  "+style.Muted.Render(row))
		}
	}

	return strings.Join(rows, "\n")
}

func labeled(label, value string) string {
	return style.Label.Render(label+":") + " " + style.Value.Render(value)
}

func previewHeight(sw swatch.Model) int {
	return max(1, sw.Height())
}
