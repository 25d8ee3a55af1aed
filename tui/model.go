// Package tui is a terminal rendition of the wealth illustration calculator.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wealth-site/domain"
	"wealth-site/page"
	"wealth-site/service"
)

const (
	fieldBalance = iota
	fieldMonthly
	fieldYears
	fieldCount
)

var (
	gold        = lipgloss.Color("#d4af37")
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(gold)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	fineStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gold).Padding(0, 1)
	fieldLabels = [fieldCount]string{"Current balance", "Monthly contribution", "Years to grow"}
)

type tickMsg struct{}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

// Model recomputes the projection on every keystroke.
type Model struct {
	firmName string
	inputs   [fieldCount]textinput.Model
	focus    int
	result   domain.ProjectionResult
	headline Typewriter
}

// NewModel creates a calculator seeded with input.
func NewModel(firmName string, input domain.ProjectionInput, reducedMotion bool) Model {
	in := service.ClampInput(input)
	values := [fieldCount]string{
		strconv.FormatFloat(in.StartingBalance, 'f', -1, 64),
		strconv.FormatFloat(in.MonthlyContribution, 'f', -1, 64),
		strconv.Itoa(in.HorizonYears),
	}

	m := Model{
		firmName: firmName,
		headline: NewTypewriter(page.Subheadlines, page.DefaultSubheadline, reducedMotion),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldBalance].Focus()
	m.recompute()

	return m
}

func (m *Model) recompute() {
	in := service.ParseProjectionInput(
		m.inputs[fieldBalance].Value(),
		m.inputs[fieldMonthly].Value(),
		m.inputs[fieldYears].Value(),
	)
	m.result = service.Project(in)
}

// Result returns the projection for the current field values.
func (m Model) Result() domain.ProjectionResult {
	return m.result
}

func (m Model) Init() tea.Cmd {
	if m.headline.Animated() {
		return tea.Batch(textinput.Blink, tick(TypeSpeed))
	}
	return textinput.Blink
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		var delay time.Duration
		m.headline, delay = m.headline.Step()
		if delay == 0 {
			return m, nil
		}
		return m, tick(delay)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.firmName+" · Build Wealth & Security") + "\n")
	b.WriteString(titleStyle.Render(m.headline.Text()+"▌") + "\n\n")

	for i, label := range fieldLabels {
		cursor := "  "
		if i == m.focus {
			cursor = titleStyle.Render("› ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, labelStyle.Render(fmt.Sprintf("%-22s", label)), m.inputs[i].View()))
	}

	summary := strings.Join([]string{
		labelStyle.Render("Estimated Future Value"),
		valueStyle.Render(service.FormatUSD(m.result.FutureValue)),
		fmt.Sprintf("Illustrative estimate assuming long-term growth over %d years.", m.result.HorizonYears),
		"Total contributions: " + service.FormatUSD(m.result.TotalContributions),
		"Estimated growth (hypothetical): " + service.FormatUSD(m.result.Growth),
	}, "\n")
	b.WriteString("\n" + boxStyle.Render(summary) + "\n\n")

	b.WriteString(fineStyle.Render(service.Disclaimer) + "\n")
	b.WriteString(fineStyle.Render("tab: next field · shift+tab: previous · esc: quit") + "\n")

	return b.String()
}
