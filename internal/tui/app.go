// Package tui provides the interactive terminal blender.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/blend/internal/blend"
	"github.com/f3rmion/blend/internal/clipboard"
	"github.com/f3rmion/blend/internal/tui/bigtext"
	"github.com/mattn/go-runewidth"
)

const (
	maxHistory  = 10
	bannerRows  = 4
	inputWidth  = 30
	wordLimit   = 40
	copiedDelay = 2 * time.Second
)

// Blender produces a portmanteau for two words.
type Blender interface {
	Generate(word1, word2 string) (blend.Result, error)
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Option configures a Model.
type Option func(*Model)

// WithCopier replaces the system clipboard.
func WithCopier(fn func(string) error) Option {
	return func(m *Model) {
		m.copier = fn
	}
}

// Model is the blender screen: two word inputs, the latest result and a
// short history.
type Model struct {
	blender Blender
	copier  func(string) error

	inputs [2]textinput.Model
	focus  int

	result  *blend.Result
	history []blend.Result
	err     error
	explain bool
	copied  bool

	width  int
	height int
}

// New creates the blender model.
func New(blender Blender, opts ...Option) Model {
	m := Model{blender: blender, copier: clipboard.Write}
	placeholders := [2]string{"first word", "second word"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = wordLimit
		ti.Width = inputWidth
		ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
		ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the interactive program.
func Run(blender Blender) error {
	p := tea.NewProgram(New(blender), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the latest blend, if any.
func (m Model) Result() (blend.Result, bool) {
	if m.result == nil {
		return blend.Result{}, false
	}
	return *m.result, true
}

// History returns earlier blends, newest first.
func (m Model) History() []blend.Result {
	return m.history
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			cmd := m.setFocus(1 - m.focus)
			return m, cmd
		case "enter":
			return m.submit()
		case "ctrl+y":
			return m.copyResult()
		case "ctrl+t":
			m.explain = !m.explain
			return m, nil
		case "ctrl+l":
			m.history = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// submit blends once both words are present; otherwise it moves to the
// empty field.
func (m Model) submit() (tea.Model, tea.Cmd) {
	word1 := strings.TrimSpace(m.inputs[0].Value())
	word2 := strings.TrimSpace(m.inputs[1].Value())
	if word1 == "" || word2 == "" {
		target := 0
		if word1 != "" {
			target = 1
		}
		cmd := m.setFocus(target)
		return m, cmd
	}

	res, err := m.blender.Generate(word1, word2)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.copied = false

	if m.result != nil {
		m.history = append([]blend.Result{*m.result}, m.history...)
		if len(m.history) > maxHistory {
			m.history = m.history[:maxHistory]
		}
	}
	m.result = &res

	m.inputs[0].SetValue("")
	m.inputs[1].SetValue("")
	cmd := m.setFocus(0)
	return m, cmd
}

func (m Model) copyResult() (tea.Model, tea.Cmd) {
	if m.result == nil {
		return m, nil
	}
	if err := m.copier(m.result.Text); err != nil {
		m.err = fmt.Errorf("copy failed: %w", err)
		return m, nil
	}
	m.copied = true
	return m, clearCopiedAfter(copiedDelay)
}

// View renders the UI.
func (m Model) View() string {
	var sections []string

	sections = append(sections,
		TitleStyle.Render("blend")+" "+SubtitleStyle.Render("phonological portmanteaus"),
		"",
		m.renderInput(0, "first"),
		m.renderInput(1, "second"),
	)

	if m.result != nil {
		sections = append(sections, m.renderResult(*m.result))
	}
	if m.err != nil {
		sections = append(sections, ErrorStyle.Render("Error: "+m.err.Error()))
	}
	if len(m.history) > 0 {
		sections = append(sections, m.renderHistory())
	}

	help := "enter blend • tab switch • ctrl+y copy • ctrl+t trace • ctrl+l clear • esc quit"
	if m.copied {
		help = CopiedStyle.Render("Copied!") + "  " + help
	}
	sections = append(sections, HelpStyle.Render(help))

	return ContentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderInput(i int, label string) string {
	style := LabelStyle
	if i == m.focus {
		style = LabelFocusedStyle
	}
	return style.Render(label) + m.inputs[i].View()
}

func (m Model) renderResult(res blend.Result) string {
	var lines []string

	word := WordStyle.Render(res.Text)
	if m.width > 0 && bigtext.Width(res.Text, bannerRows) <= m.width-12 {
		word = BannerStyle.Render(bigtext.Render(res.Text, bannerRows))
	}
	lines = append(lines, word, "")

	kindStyle := KindFallbackStyle
	if res.Blended() {
		kindStyle = KindBlendedStyle
	}
	lines = append(lines, kindStyle.Render(strings.ReplaceAll(res.Kind.String(), "_", " ")))

	msgStyle := MessageStyle
	if m.width > 0 {
		msgStyle = msgStyle.Width(min(m.width-12, 72))
	}
	lines = append(lines, msgStyle.Render(res.Message()))

	if m.explain {
		lines = append(lines, "", TraceStyle.Render(trace(res)))
	}
	return ResultBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// trace lists the phoneme fragments each word contributed.
func trace(res blend.Result) string {
	if !res.Blended() {
		return "no phonological trace: " + res.Reason.Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s → %s\n", res.Word1, res.First)
	fmt.Fprintf(&b, "%s → %s", res.Word2, res.Second)
	if res.Match != nil {
		fmt.Fprintf(&b, "\nshared run: %d phoneme(s) at %d/%d", res.Match.Size, res.Match.A, res.Match.B)
	}
	if res.Reversed {
		b.WriteString("\nsecond word leads")
	}
	return b.String()
}

func (m Model) renderHistory() string {
	pairs := make([]string, len(m.history))
	widest := 0
	for i, res := range m.history {
		pairs[i] = res.Word1 + " + " + res.Word2
		widest = max(widest, runewidth.StringWidth(pairs[i]))
	}

	lines := []string{HistoryHeaderStyle.Render("Earlier")}
	for i, res := range m.history {
		lines = append(lines,
			HistoryItemStyle.Render(runewidth.FillRight(pairs[i], widest))+"  "+
				HistoryResultStyle.Render(res.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
