package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kritsw/bankconv/internal/history"
)

type HistoryModel struct {
	CommonModel
	historyService *history.Service

	table       table.Model
	conversions []*history.Conversion
	loading     bool
	err         error
}

func NewHistoryModel(historySvc *history.Service) HistoryModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Bank", Width: 6},
		{Title: "File", Width: 32},
		{Title: "Rows", Width: 6},
		{Title: "Converted", Width: 10},
		{Title: "Excluded", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return HistoryModel{
		historyService: historySvc,
		table:          t,
		loading:        true,
	}
}

func (m HistoryModel) Title() string { return "Conversion History" }

func (m HistoryModel) ShortHelp() string {
	return "d: delete | r: refresh | Esc: back"
}

func (m HistoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "d":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.conversions) {
				return m, nil
			}

			return m, m.deleteCmd(m.conversions[idx].ID)
		}

	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.conversions = msg.conversions

		rows := make([]table.Row, 0, len(m.conversions))
		for _, c := range m.conversions {
			rows = append(rows, table.Row{
				FormatDate(c.CreatedAt),
				c.BankCode,
				c.Filename,
				fmt.Sprintf("%d", c.TotalRows),
				fmt.Sprintf("%d", c.ValidTransactions),
				FormatRows(c.InvalidRows),
			})
		}

		m.table.SetRows(rows)

		return m, nil

	case historyDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.loading = true

		return m, m.loadCmd()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HistoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading conversions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.conversions) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No conversions recorded yet.")
	}

	return lipgloss.NewStyle().
		Padding(1).
		Render(m.table.View() + "\n\n" + m.ShortHelp())
}

// Messages

type historyLoadedMsg struct {
	conversions []*history.Conversion
	err         error
}

type historyDeletedMsg struct {
	err error
}

func (m HistoryModel) loadCmd() tea.Cmd {
	svc := m.historyService

	return func() tea.Msg {
		if svc == nil {
			return historyLoadedMsg{err: errors.New("history requires a database connection")}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		cs, err := svc.List(ctx, history.ListFilter{Limit: 100})

		return historyLoadedMsg{conversions: cs, err: err}
	}
}

func (m HistoryModel) deleteCmd(id uuid.UUID) tea.Cmd {
	svc := m.historyService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return historyDeletedMsg{err: svc.Delete(ctx, id)}
	}
}
