package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-ri-doctor/model"
	"github.com/elC0mpa/aws-ri-doctor/service/coverage"
)

const (
	defaultWidth   = 120
	defaultHeight  = 30
	minColumnWidth = 10
	// tabs, info line, table border and title, help line
	chromeHeight = 9
)

// Options configures the interactive report.
type Options struct {
	Snapshot  coverage.Snapshot
	Initial   coverage.View
	AccountID string
	Region    string
	Summary   *model.CoverageSummary
}

// Model is the bubbletea model of the tabbed coverage table. It only ever
// reads the snapshot it was given.
type Model struct {
	opts     Options
	selector coverage.Selector
	table    table.Model
	rows     int
	err      error
	width    int
	height   int
}

func New(opts Options) Model {
	m := Model{
		opts:     opts,
		selector: coverage.NewSelector(opts.Initial),
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(defaultHeight-chromeHeight),
			table.WithStyles(tableStyles()),
		),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refresh()
	return m
}

// Run shows the report until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-chromeHeight, 1))
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "tab":
			m.selector.Next()
			m.refresh()
			return m, nil
		case "left", "h", "shift+tab":
			m.selector.Prev()
			m.refresh()
			return m, nil
		case "down", "j":
			m.next()
			return m, nil
		case "up", "k":
			m.previous()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	view := m.selector.Current()

	var body string
	if m.err != nil {
		body = errorStyle.Render(fmt.Sprintf("%s is unavailable: %v", view.Title(), m.err))
	} else {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		m.renderInfo(),
		tableBorder.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(view.Title()), body)),
		helpStyle.Render("←/→ switch view • ↑/↓ select row • q quit"),
	)
}

// Current returns the view being shown.
func (m Model) Current() coverage.View {
	return m.selector.Current()
}

// Cursor returns the selected row index.
func (m Model) Cursor() int {
	return m.table.Cursor()
}

// Err returns the error raised by the current view, if any.
func (m Model) Err() error {
	return m.err
}

// refresh reloads columns and rows for the selected view.
func (m *Model) refresh() {
	view := m.selector.Current()

	rows, err := view.Rows(m.opts.Snapshot)
	m.err = err

	// Rows must be cleared before the column count changes.
	m.table.SetRows(nil)
	m.table.SetColumns(columns(view, m.width))

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row(r))
	}
	m.table.SetRows(tableRows)
	m.rows = len(tableRows)
	m.table.SetCursor(0)
}

func (m *Model) next() {
	if m.rows == 0 {
		return
	}
	if m.table.Cursor() >= m.rows-1 {
		m.table.SetCursor(0)
		return
	}
	m.table.MoveDown(1)
}

func (m *Model) previous() {
	if m.rows == 0 {
		return
	}
	if m.table.Cursor() <= 0 {
		m.table.SetCursor(m.rows - 1)
		return
	}
	m.table.MoveUp(1)
}

func (m Model) renderTabs() string {
	titles := make([]string, 0, len(coverage.Views))
	for i, v := range coverage.Views {
		tab := v.Tab()
		rendered := tabInitial.Render(tab[:1]) + tabRest.Render(tab[1:])
		if i == m.selector.Index() {
			rendered = tabActive.Render(rendered)
		}
		titles = append(titles, rendered)
	}
	return tabBorder.Render(strings.Join(titles, " │ "))
}

func (m Model) renderInfo() string {
	info := fmt.Sprintf(" Account: %s  Region: %s", m.opts.AccountID, m.opts.Region)
	if s := m.opts.Summary; s != nil {
		info += fmt.Sprintf("  Cost Explorer RI coverage (%s..%s): %s", s.Start, s.End, coverage.FormatPercent(s.CoveragePercent/100))
	}
	return infoStyle.Render(info)
}

func columns(view coverage.View, width int) []table.Column {
	header := view.Header()
	widths := view.Widths()

	cols := make([]table.Column, len(header))
	for i, title := range header {
		cols[i] = table.Column{
			Title: title,
			Width: max(width*widths[i]/100, minColumnWidth),
		}
	}
	return cols
}
