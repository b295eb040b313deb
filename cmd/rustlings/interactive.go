package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

var errAborted = errors.New("user aborted")

type confirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Abort  key.Binding
}

var defaultConfirmKeys = confirmKeys{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
	Toggle: key.NewBinding(key.WithKeys("left", "right", "tab", "h", "l"), key.WithHelp("←/→", "toggle")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Abort:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "abort")),
}

// confirmModel is a yes/no prompt. The initial selection is Yes, so ENTER
// proceeds.
type confirmModel struct {
	title   string
	keys    confirmKeys
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(title string) confirmModel {
	return confirmModel{title: title, keys: defaultConfirmKeys, value: true}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Accept):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Yes):
		m.value = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.No):
		m.value = false
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Toggle):
		m.value = !m.value
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	help := helpStyle.Render(fmt.Sprintf("%s • %s • %s",
		m.keys.Toggle.Help().Key+" "+m.keys.Toggle.Help().Desc,
		m.keys.Accept.Help().Key+" "+m.keys.Accept.Help().Desc,
		m.keys.Abort.Help().Key+" "+m.keys.Abort.Help().Desc))
	return fmt.Sprintf("%s\n%s / %s\n%s\n", titleStyle.Render(m.title), yes, no, help)
}

func promptConfirm(title string) (bool, error) {
	result, err := tea.NewProgram(newConfirmModel(title)).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, errAborted
	}
	return rm.value, nil
}
