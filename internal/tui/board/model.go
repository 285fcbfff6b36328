// Package board implements the interactive scoreboard that runs every
// registered day and shows the answers as they come in.
package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BenDeJonge/advent-of-code-2024/internal/input"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// result is the outcome of running both parts of one day.
type result struct {
	day     int
	part1   int
	part2   int
	elapsed time.Duration
	err     error
}

// Model is the scoreboard TUI model.
type Model struct {
	inputs  string
	days    []int
	results map[int]result
	next    int
	spin    spinner.Model
	help    help.Model
	printer *message.Printer
	done    bool
}

// New creates a scoreboard that reads inputs from the given directory.
func New(inputs string) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(spinnerStyle),
	)
	return Model{
		inputs:  inputs,
		days:    solve.Days(),
		results: map[int]result{},
		spin:    sp,
		help:    help.New(),
		printer: message.NewPrinter(language.English),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.runNext())
}

// runNext solves the next pending day off the UI goroutine.
func (m Model) runNext() tea.Cmd {
	if m.next >= len(m.days) {
		return nil
	}
	day, dir := m.days[m.next], m.inputs
	return func() tea.Msg {
		sol, err := solve.Lookup(day)
		if err != nil {
			return result{day: day, err: err}
		}
		text, err := input.Read(dir, day)
		if err != nil {
			return result{day: day, err: err}
		}
		started := time.Now()
		part1, err := sol.Part1(text)
		if err != nil {
			return result{day: day, err: err}
		}
		part2, err := sol.Part2(text)
		if err != nil {
			return result{day: day, err: err}
		}
		return result{
			day:     day,
			part1:   part1,
			part2:   part2,
			elapsed: time.Since(started).Round(time.Millisecond),
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
	case result:
		m.results[msg.day] = msg
		m.next++
		if m.next >= len(m.days) {
			m.done = true
			return m, nil
		}
		return m, m.runNext()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Advent of Code 2024"))
	b.WriteString("\n\n")
	for i, day := range m.days {
		sol, err := solve.Lookup(day)
		if err != nil {
			continue
		}
		label := dayStyle.Render(fmt.Sprintf("%2d", day)) + " " + sol.Title
		switch {
		case i < m.next:
			b.WriteString(m.renderResult(label, m.results[day]))
		case i == m.next && !m.done:
			b.WriteString(fmt.Sprintf("%s %s\n", m.spin.View(), label))
		default:
			b.WriteString(pendingStyle.Render("  "+label) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) renderResult(label string, r result) string {
	if r.err != nil {
		return fmt.Sprintf("  %s  %s\n", label, errorStyle.Render(r.err.Error()))
	}
	return fmt.Sprintf("  %s  %s %s %s\n",
		label,
		answerStyle.Render(m.printer.Sprintf("%d", r.part1)),
		answerStyle.Render(m.printer.Sprintf("%d", r.part2)),
		elapsedStyle.Render(r.elapsed.String()))
}
