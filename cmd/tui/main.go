package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/kritsw/bankconv/cmd/tui/internal/view"
	"github.com/kritsw/bankconv/internal/config"
	"github.com/kritsw/bankconv/internal/convert"
	"github.com/kritsw/bankconv/internal/database"
	"github.com/kritsw/bankconv/internal/history"
	historyStore "github.com/kritsw/bankconv/internal/history/store"
)

type model struct {
	convertService *convert.Service
	historyService *history.Service

	currentView View

	convertView view.ConvertModel
	historyView view.HistoryModel
}

type View int

const (
	ViewMenu    View = 0
	ViewConvert View = 1
	ViewHistory View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	convertSvc := convert.NewService()

	// History is optional in the TUI: without a database, conversions still
	// run, they are just not recorded.
	var historySvc *history.Service

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Warn("database unavailable, history disabled", "error", err)
	} else {
		historySvc = history.NewService(historyStore.New(db))
	}

	return model{
		convertService: convertSvc,
		historyService: historySvc,
		currentView:    ViewMenu,
		convertView:    view.NewConvertModel(convertSvc, historySvc),
		historyView:    view.NewHistoryModel(historySvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewConvert
				m.convertView = view.NewConvertModel(m.convertService, m.historyService)

				return m, m.convertView.Init()
			case "2":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.historyService)

				return m, m.historyView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewConvert:
		var newModel tea.Model
		newModel, cmd = m.convertView.Update(msg)
		m.convertView = newModel.(view.ConvertModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Bankconv TUI\n\n" +
				"1. Convert Statement\n" +
				"2. Conversion History\n\n" +
				"q. Quit",
		)
	case ViewConvert:
		return m.convertView.View()
	case ViewHistory:
		return m.historyView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
