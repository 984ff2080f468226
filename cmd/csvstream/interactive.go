package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shapestone/stream-csv/pkg/csv"
)

// previewLimit caps how many records the TUI loads; the preview is meant
// for a quick look, not for paging a whole archive.
const previewLimit = 500

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type previewModel struct {
	filename  string
	table     table.Model
	err       error
	loaded    bool
	total     int
	truncated bool
}

type recordsMsg struct {
	err       error
	headers   csv.Record
	records   []csv.Record
	truncated bool
}

func newPreviewModel(filename string) *previewModel {
	return &previewModel{filename: filename}
}

func (m *previewModel) Init() tea.Cmd {
	return m.loadRecords
}

// loadRecords scans the file up to previewLimit records.
func (m *previewModel) loadRecords() tea.Msg {
	in, closeIn, err := openInput(m.filename)
	if err != nil {
		return recordsMsg{err: err}
	}
	defer closeIn()

	scanner := csv.NewScanner(in).SetHasHeaders(true)
	var records []csv.Record
	truncated := false
	for scanner.Scan() {
		if len(records) == previewLimit {
			truncated = true
			break
		}
		records = append(records, scanner.Record())
	}
	if err := scanner.Err(); err != nil {
		return recordsMsg{err: err}
	}
	return recordsMsg{
		headers:   scanner.Headers(),
		records:   records,
		truncated: truncated,
	}
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.loaded = true
		m.total = len(msg.records)
		m.truncated = msg.truncated
		m.table = buildTable(msg.headers, msg.records)
		return m, nil

	case tea.WindowSizeMsg:
		if m.loaded {
			height := msg.Height - 6
			if height < 3 {
				height = 3
			}
			m.table.SetHeight(height)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	if m.loaded {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *previewModel) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	if !m.loaded {
		return "Loading " + m.filename + "...\n"
	}

	count := fmt.Sprintf("%d records", m.total)
	if m.truncated {
		count += fmt.Sprintf(" (first %d shown)", previewLimit)
	}

	return titleStyle.Render("csvstream · "+m.filename) + "  " +
		countStyle.Render(count) + "\n\n" +
		m.table.View() + "\n" +
		helpStyle.Render("↑/↓ scroll · q quit") + "\n"
}

// buildTable sizes columns to the widest cell, capped so wide documents
// stay readable.
func buildTable(headers csv.Record, records []csv.Record) table.Model {
	const maxWidth = 24

	width := len(headers)
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	columns := make([]table.Column, width)
	for i := range columns {
		title := fmt.Sprintf("col %d", i+1)
		if v, ok := headers.Get(i); ok && v != "" {
			title = v
		}
		w := len(title)
		for _, rec := range records {
			if v, ok := rec.Get(i); ok && len(v) > w {
				w = len(v)
			}
		}
		if w > maxWidth {
			w = maxWidth
		}
		columns[i] = table.Column{Title: title, Width: w}
	}

	rows := make([]table.Row, len(records))
	for i, rec := range records {
		row := make(table.Row, width)
		for j := range row {
			row[j], _ = rec.Get(j)
		}
		rows[i] = row
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#2E7D32"))
	tbl.SetStyles(styles)

	return tbl
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newPreviewModel(filename), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
