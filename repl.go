// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avltree/script"
	"github.com/patrickmn/go-cache"
)

// maxLogLines bounds the output log kept by the REPL
const maxLogLines = 500

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	// Components
	textInput    textinput.Model
	logViewport  viewport.Model
	treeViewport viewport.Model
	helpViewport viewport.Model

	// Data
	runner       *script.Runner
	renderCache  *cache.Cache
	renderValues bool

	// State
	logLines   []string
	history    []string
	historyPos int
	showHelp   bool
	status     string
	statusErr  bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Command        lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// clipboardMsg reports the outcome of a copy started by ctrl+y
type clipboardMsg struct {
	count int
	err   error
}

// InitialModel creates the initial model
func InitialModel(config *Config, rc *cache.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 ten"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	logViewport := viewport.New(0, 0)
	treeViewport := viewport.New(0, 0)
	helpViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		textInput:       ti,
		logViewport:     logViewport,
		treeViewport:    treeViewport,
		helpViewport:    helpViewport,
		runner:          script.NewRunner(),
		renderCache:     rc,
		renderValues:    config.Repl.RenderValues,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.appendLog("Type a command and press enter. f1 shows the command reference.")
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("📋 Copied %d keys to clipboard", msg.count), false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		line := strings.TrimSpace(m.textInput.Value())
		m.textInput.Reset()
		if line == "" {
			return m, nil
		}
		if line == "quit" || line == "exit" {
			return m, tea.Quit
		}
		m.execute(line)
		return m, nil
	case "up":
		if m.historyPos > 0 {
			m.historyPos--
			m.textInput.SetValue(m.history[m.historyPos])
			m.textInput.CursorEnd()
		}
		return m, nil
	case "down":
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.textInput.SetValue(m.history[m.historyPos])
			m.textInput.CursorEnd()
		} else {
			m.historyPos = len(m.history)
			m.textInput.Reset()
		}
		return m, nil
	case "f1":
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.updateHelp()
		}
		return m, nil
	case "f2":
		m.renderValues = !m.renderValues
		m.refreshTree()
		return m, nil
	case "ctrl+y":
		keys := m.runner.Session.Current().Tree().KeysToArray()
		return m, func() tea.Msg {
			return clipboardMsg{count: len(keys), err: copyToClipboard(joinKeys(keys))}
		}
	case "pgup":
		m.activeViewport().LineUp(m.activeViewport().Height)
		return m, nil
	case "pgdown":
		m.activeViewport().LineDown(m.activeViewport().Height)
		return m, nil
	case "home":
		m.activeViewport().GotoTop()
		return m, nil
	case "end":
		m.activeViewport().GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// activeViewport is the right-hand panel the scroll keys move
func (m *Model) activeViewport() *viewport.Model {
	if m.showHelp {
		return &m.helpViewport
	}
	return &m.treeViewport
}

// execute runs one command line and records it in the log and history
func (m *Model) execute(line string) {
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	m.appendLog(m.styles.Command.Render("> " + line))
	out, err := m.runner.Exec(line)
	if err != nil {
		m.appendLog(m.styles.ErrorMessage.Render("error: " + err.Error()))
		m.setStatus(err.Error(), true)
	} else {
		if out != "" {
			m.appendLog(out)
		}
		m.setStatus("", false)
	}
	m.refreshTree()
}

func (m *Model) appendLog(text string) {
	m.logLines = append(m.logLines, strings.Split(text, "\n")...)
	if extra := len(m.logLines) - maxLogLines; extra > 0 {
		m.logLines = m.logLines[extra:]
	}
	m.logViewport.SetContent(strings.Join(m.logLines, "\n"))
	m.logViewport.GotoBottom()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// refreshTree shows the current tree's diagram, reusing a cached rendering
// of the same tree version when there is one.
func (m *Model) refreshTree() {
	session := m.runner.Session
	tracked := session.Current()
	key := renderKey(session.CurrentName(), tracked.Version(), m.renderValues)

	diagram, ok := GetRendering(m.renderCache, key)
	if !ok {
		diagram = script.Render(tracked.Tree(), m.renderValues)
		CacheRendering(m.renderCache, key, diagram)
	}
	m.treeViewport.SetContent(diagram)
}

// updateHelp renders the command reference into the help viewport
func (m *Model) updateHelp() {
	helpTxt := "# Commands\n" + scriptReference
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
			m.helpViewport.SetContent(rendered)
			return
		}
	}
	m.helpViewport.SetContent(helpTxt)
}

// View renders the program's UI, which is just a string
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth, rightWidth, logHeight := m.dimensions()
	inputHeight := 1

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(m.textInput.View())

	logBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(logHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 📜 Output "),
			m.logViewport.View(),
		))

	session := m.runner.Session
	rightTitle := fmt.Sprintf(" 🌳 %s (size %d, height %d) ",
		session.CurrentName(), session.Current().Tree().Size(), session.Current().Tree().Height())
	rightContent := m.treeViewport.View()
	if m.showHelp {
		rightTitle = " 📖 Command Reference "
		rightContent = m.helpViewport.View()
	}

	rightBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(logHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(rightTitle),
			rightContent,
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightBox)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderKeyHelp(),
	)
}

func (m Model) dimensions() (leftWidth, rightWidth, logHeight int) {
	leftWidth = (m.width / 2) - 1
	rightWidth = m.width - leftWidth - 4
	logHeight = m.height - 9 // input box, borders, status and footer
	return
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	leftWidth, rightWidth, logHeight := m.dimensions()

	m.textInput.Width = leftWidth - 4 - len(m.textInput.Prompt)
	m.logViewport.Width = leftWidth - 2
	m.logViewport.Height = logHeight - 1
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = logHeight + 2
	m.helpViewport.Width = rightWidth - 2
	m.helpViewport.Height = logHeight + 2
	m.logViewport.GotoBottom()
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(style.Render(m.status))
}

// renderKeyHelp renders the key binding footer
func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "↑/↓", "pgup/pgdown", "f1", "f2", "ctrl+y", "esc"}
	descs := []string{"run command", "history", "scroll", "command reference", "toggle values", "copy keys", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runRepl starts the Bubble Tea application
func runRepl(config *Config) error {
	InitializeColors()

	rc := NewRenderCache(time.Duration(config.Repl.CacheMinutes) * time.Minute)
	program := tea.NewProgram(
		InitialModel(config, rc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
