// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for dataentry.
// This file, tui.go, holds the single form model: two inputs, three buttons,
// a read-only output area and a modal notification dialog.
package tui // import "github.com/toeirei/dataentry/internal/tui"

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dataentry/internal/core"
	"github.com/toeirei/dataentry/internal/i18n"
	"github.com/toeirei/dataentry/internal/logging"
)

// Focus positions, in tab order.
const (
	focusName = iota
	focusAge
	focusSave
	focusView
	focusClear
	focusCount
)

const (
	defaultOutputWidth  = 48
	defaultOutputHeight = 8
)

// clipboardWriteAll allows tests to stub clipboard access.
var clipboardWriteAll = clipboard.WriteAll

// dialog is the modal notification shown after an action.
type dialog struct {
	kind    core.Kind
	title   string
	message string
}

// formModel is the top-level bubbletea model.
type formModel struct {
	ctx     context.Context
	ctrl    *core.Controller
	inputs  []textinput.Model // 0: name, 1: age
	focus   int
	output  viewport.Model
	listing string
	dialog  *dialog
	width   int
	height  int
}

// newFormModel builds the form. A non-nil startup result (e.g. the store
// could not be opened) is shown as the first dialog.
func newFormModel(ctx context.Context, ctrl *core.Controller, startup *core.Result) formModel {
	m := formModel{
		ctx:    ctx,
		ctrl:   ctrl,
		inputs: make([]textinput.Model, 2),
		output: viewport.New(defaultOutputWidth, defaultOutputHeight),
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 128
		t.Width = 32
		switch i {
		case 0:
			t.Prompt = i18n.T("tui.name_label")
			t.Placeholder = "Alice"
		case 1:
			t.Prompt = i18n.T("tui.age_label")
			t.Placeholder = "30"
		}
		m.inputs[i] = t
	}
	m.syncInputs()
	m.inputs[focusName].Focus()
	m.inputs[focusName].TextStyle = focusedStyle
	m.output.SetContent(helpStyle.Render(i18n.T("tui.empty_listing")))

	if startup != nil && !startup.Silent() {
		m.showResult(*startup)
	}
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeOutput()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The dialog is modal: it swallows every key until dismissed.
		if m.dialog != nil {
			switch msg.String() {
			case "enter", "esc", " ":
				m.dialog = nil
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		case "ctrl+r":
			m.view()
			return m, nil
		case "ctrl+l":
			m.clear()
			return m, nil
		case "ctrl+y":
			m.copyListing()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			switch m.focus {
			case focusSave:
				m.save()
			case focusView:
				m.view()
			case focusClear:
				m.clear()
			default:
				return m, m.setFocus(m.focus + 1)
			}
			return m, nil
		}
	}

	return m, m.updateInputs(msg)
}

func (m *formModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// setFocus moves focus to i (wrapping) and restyles the inputs.
func (m *formModel) setFocus(i int) tea.Cmd {
	m.focus = (i%focusCount + focusCount) % focusCount

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			m.inputs[j].TextStyle = focusedStyle
			continue
		}
		m.inputs[j].Blur()
		m.inputs[j].TextStyle = lipgloss.NewStyle()
	}
	return cmd
}

// syncForm copies the input values into the controller's form state.
func (m *formModel) syncForm() {
	fs := m.ctrl.Form()
	fs.SetName(m.inputs[focusName].Value())
	fs.SetAge(m.inputs[focusAge].Value())
}

// syncInputs copies the controller's form state back into the inputs.
func (m *formModel) syncInputs() {
	fs := m.ctrl.Form()
	m.inputs[focusName].SetValue(fs.ReadName())
	m.inputs[focusAge].SetValue(fs.ReadAge())
}

func (m *formModel) save() {
	m.syncForm()
	r := m.ctrl.Save(m.ctx)
	m.syncInputs()
	m.showResult(r)
}

func (m *formModel) view() {
	listing, r := m.ctrl.View(m.ctx)
	if r.OK() {
		// A failed fetch keeps the previous listing on screen.
		m.listing = listing
		m.output.SetContent(listing)
		m.output.GotoTop()
	}
	m.showResult(r)
}

func (m *formModel) clear() {
	m.syncForm()
	m.showResult(m.ctrl.Clear())
	m.syncInputs()
}

func (m *formModel) copyListing() {
	if err := clipboardWriteAll(m.listing); err != nil {
		logging.Warnf("clipboard copy failed: %v", err)
		m.dialog = &dialog{kind: core.StorageError, title: i18n.T("tui.clipboard_title"), message: i18n.T("tui.copy_failed", err)}
		return
	}
	m.dialog = &dialog{kind: core.Success, title: i18n.T("tui.clipboard_title"), message: i18n.T("tui.copied")}
}

func (m *formModel) showResult(r core.Result) {
	if r.Silent() {
		return
	}
	m.dialog = &dialog{kind: r.Kind, title: r.Title, message: r.Message}
}

func (m *formModel) resizeOutput() {
	w := m.width - 10
	if w < 20 {
		w = 20
	}
	// title, two inputs, buttons, help and margins take about 14 rows.
	h := m.height - 14
	if h < 3 {
		h = 3
	}
	m.output.Width = w
	m.output.Height = h
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	buttons := []struct {
		focus int
		label string
	}{
		{focusSave, i18n.T("tui.save")},
		{focusView, i18n.T("tui.view")},
		{focusClear, i18n.T("tui.clear")},
	}
	rendered := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		style := buttonStyle
		if m.focus == btn.focus {
			style = activeButtonStyle
		}
		rendered = append(rendered, style.Render(btn.label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n")
	b.WriteString(outputStyle.Render(m.output.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("tui.help")))

	screen := docStyle.Render(b.String())
	if m.dialog == nil {
		return screen
	}
	return overlay(screen, m.renderDialog())
}

func (m formModel) renderDialog() string {
	title := dialogTitleStyle.Render(m.dialog.title)
	switch m.dialog.kind {
	case core.Success:
		title = successStyle.Render(title)
	default:
		title = errorStyle.Render(title)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.dialog.message,
		"",
		helpStyle.Render(i18n.T("tui.dialog_help")),
	)
	return dialogBoxStyle.Render(body)
}

// Run starts the interactive form and blocks until the user quits.
func Run(ctx context.Context, ctrl *core.Controller, startup *core.Result) error {
	_, err := tea.NewProgram(newFormModel(ctx, ctrl, startup), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		logging.Errorf("TUI run error: %v", err)
	}
	return err
}
