package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/shellkit/demo"
	"github.com/joshuapare/shellkit/ioctx"
	"github.com/joshuapare/shellkit/registry"
	"github.com/joshuapare/shellkit/shell"
	"github.com/joshuapare/shellkit/cmd/shellexplorer/logger"
)

// pane identifies which half of the split view has keyboard focus.
type pane int

const (
	treePane pane = iota
	inputPane
)

// Model is the shellexplorer root TUI model: a tree pane (adapted from the
// teacher's keytree), a detail pane (adapted from valuedetail) and a command
// input line wired straight into a shell.Shell, so commands typed at the
// bottom mutate the same registry the tree pane renders.
type Model struct {
	reg *registry.Registry
	sh  *shell.Shell
	uc  *ioctx.UserContext

	tree   *treeModel
	detail *detailModel
	input  textinput.Model

	focus  pane
	width  int
	height int

	status string
	err    error
}

// NewModel builds a Model with the demo classes pre-registered, optionally
// seeded by cfg and with scriptPath sourced before the TUI starts.
func NewModel(cfg *Config, scriptPath string) (Model, error) {
	reg := registry.New()
	if err := demo.Register(reg.Host()); err != nil {
		return Model{}, err
	}
	uc := ioctx.NewUserContext()
	cfg.ApplyTo(uc)

	sh := shell.New(reg)

	ti := textinput.New()
	ti.Placeholder = "ls, cd, create, echo, execute ..."
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		reg:    reg,
		sh:     sh,
		uc:     uc,
		tree:   newTreeModel(reg),
		detail: newDetailModel(),
		input:  ti,
		focus:  inputPane,
	}

	if scriptPath != "" {
		if err := m.sourceFile(scriptPath); err != nil {
			m.err = err
		}
	}

	m.tree.Refresh()
	m.refreshDetail()
	return m, nil
}

func (m *Model) sourceFile(path string) error {
	var out strings.Builder
	return m.sh.Run(path, strings.NewReader("source "+path+"\n"), &out, m.uc)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) refreshDetail() {
	row, ok := m.tree.Selected()
	m.detail.Show(m.reg, row, ok)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.focus == treePane {
				m.focus = inputPane
				m.input.Focus()
			} else {
				m.focus = treePane
				m.input.Blur()
			}
			return m, nil
		}

		if m.focus == treePane {
			m.tree.Update(msg)
			m.refreshDetail()
			return m, nil
		}

		switch msg.String() {
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			m.runLine(line)
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	dcmd := m.detail.Update(msg)
	return m, tea.Batch(cmd, dcmd)
}

func (m *Model) runLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	var out strings.Builder
	err := m.sh.Run("repl", strings.NewReader(line+"\n"), &out, m.uc)
	m.err = err
	m.status = strings.TrimSpace(out.String())
	m.tree.Refresh()
	m.refreshDetail()
	logger.Debug("ran command", "line", line, "err", err)
}

func (m *Model) layout() {
	treeWidth := m.width / 3
	detailWidth := m.width - treeWidth - 4
	paneHeight := m.height - 6
	if paneHeight < 1 {
		paneHeight = 1
	}
	m.tree.SetSize(treeWidth-2, paneHeight-2)
	m.detail.SetSize(detailWidth-2, paneHeight-2)
	m.input.Width = m.width - 4
}

func (m Model) View() string {
	treeStyle := paneStyle
	if m.focus == treePane {
		treeStyle = focusedPaneStyle
	}
	detailStyle := paneStyle

	treeWidth := m.width / 3
	detailWidth := m.width - treeWidth - 4
	paneHeight := m.height - 6
	if paneHeight < 1 {
		paneHeight = 10
	}

	treeView := treeStyle.Width(treeWidth).Height(paneHeight).Render(m.tree.View())
	detailView := detailStyle.Width(detailWidth).Height(paneHeight).Render(m.detail.View())

	row := lipgloss.JoinHorizontal(lipgloss.Top, treeView, detailView)

	status := statusBarStyle.Render("pwd " + m.uc.Pwd())
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	} else if m.status != "" {
		status = statusBarStyle.Render(m.status)
	}

	help := statusBarStyle.Render("tab: switch pane  enter: run  ctrl+c: quit")

	return fmt.Sprintf("%s\n%s\n%s\n%s", row, status, m.input.View(), help)
}
