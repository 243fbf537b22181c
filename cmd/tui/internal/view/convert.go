package view

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kritsw/bankconv/internal/convert"
	"github.com/kritsw/bankconv/internal/history"
	"github.com/kritsw/bankconv/internal/statement"
	"github.com/kritsw/bankconv/internal/template"
)

type convertState int

const (
	convertStateFilePick convertState = iota
	convertStateBankSelect
	convertStateFieldEdit
	convertStateConverting
	convertStateResult
)

type ConvertModel struct {
	CommonModel
	convertService *convert.Service
	historyService *history.Service

	state      convertState
	filePicker filepicker.Model

	path         string
	bankOptions  []template.Bank
	bankCursor   int
	selectedBank template.Bank

	form       *huh.Form
	formValues []string
	missing    []template.Field

	outputPath string
	summary    statement.Summary
	status     string
	err        error
}

func NewConvertModel(convertSvc *convert.Service, historySvc *history.Service) ConvertModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ConvertModel{
		convertService: convertSvc,
		historyService: historySvc,
		filePicker:     fp,
		bankOptions:    template.All(),
	}
}

func (m ConvertModel) Title() string { return "Convert Statement" }

func (m ConvertModel) ShortHelp() string {
	switch m.state {
	case convertStateFieldEdit:
		return "Enter: next field | Esc: back"
	}

	return "Esc: back | Enter: select"
}

func (m ConvertModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ConvertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.state != convertStateFieldEdit {
			return m.handleEsc()
		}

		if m.state == convertStateBankSelect {
			return m.updateBankSelect(msg)
		}

	case convertResultMsg:
		if msg.err != nil {
			if missing, ok := missingFields(msg.err); ok {
				m.missing = missing
				m.status = "Mandatory fields not mapped: " + fieldNames(missing)

				return m.enterFieldEdit()
			}

			m.state = convertStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.state = convertStateResult
		m.err = nil
		m.outputPath = msg.outputPath
		m.summary = msg.summary
		m.status = fmt.Sprintf("Wrote %s", msg.outputPath)

		return m, nil
	}

	switch m.state {
	case convertStateFilePick:
		return m.updateFilePick(msg)
	case convertStateFieldEdit:
		return m.updateFieldEdit(msg)
	}

	return m, nil
}

func (m ConvertModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case convertStateBankSelect:
		m.state = convertStateFilePick
		return m, m.filePicker.Init()
	case convertStateResult:
		m.state = convertStateFilePick
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ConvertModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.path = path
		m.state = convertStateBankSelect

		// Preselect the template matching the filename prefix.
		if b, ok := template.FindByFilename(filepath.Base(path)); ok {
			for i, opt := range m.bankOptions {
				if opt.Code == b.Code {
					m.bankCursor = i
					break
				}
			}
		}

		return m, nil
	}

	return m, cmd
}

func (m ConvertModel) updateBankSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.bankCursor > 0 {
			m.bankCursor--
		}
	case tea.KeyDown:
		if m.bankCursor < len(m.bankOptions)-1 {
			m.bankCursor++
		}
	case tea.KeyEnter:
		m.selectedBank = m.bankOptions[m.bankCursor]
		m.missing = nil
		m.status = ""

		return m.enterFieldEdit()
	}

	return m, nil
}

// enterFieldEdit builds the mapping form, prefilled from the selected bank
// template or, after a validation failure, from the operator's last answers.
func (m ConvertModel) enterFieldEdit() (tea.Model, tea.Cmd) {
	fields := template.AllFields()

	if m.formValues == nil {
		m.formValues = make([]string, len(fields))
		for i, f := range fields {
			m.formValues[i] = m.selectedBank.Fields[f]
		}
	}

	inputs := make([]huh.Field, len(fields))
	for i, f := range fields {
		title := string(f)
		if f.Mandatory() {
			title += " (required)"
		}

		inputs[i] = huh.NewInput().
			Key(string(f)).
			Title(title).
			Value(&m.formValues[i])
	}

	m.form = huh.NewForm(huh.NewGroup(inputs...)).
		WithWidth(60).
		WithShowHelp(false)
	m.state = convertStateFieldEdit

	return m, m.form.Init()
}

func (m ConvertModel) updateFieldEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = convertStateBankSelect
			m.form = nil
			m.formValues = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	specs := make(map[template.Field]string)

	for _, f := range template.AllFields() {
		if v := m.form.GetString(string(f)); v != "" {
			specs[f] = v
		}
	}

	m.state = convertStateConverting
	m.status = fmt.Sprintf("Converting %s...", filepath.Base(m.path))

	return m, m.convertCmd(specs)
}

func (m ConvertModel) View() string {
	switch m.state {
	case convertStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select statement file:\n\n" + m.filePicker.View(),
		)
	case convertStateBankSelect:
		return m.viewBankSelect()
	case convertStateFieldEdit:
		return m.viewFieldEdit()
	case convertStateConverting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case convertStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ConvertModel) viewBankSelect() string {
	s := fmt.Sprintf("File: %s\n\nSelect bank template:\n\n", filepath.Base(m.path))

	for i, bank := range m.bankOptions {
		cursor := " "
		if i == m.bankCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s - %s\n", cursor, bank.Code, bank.Name)
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ConvertModel) viewFieldEdit() string {
	header := fmt.Sprintf("Mapping for %s (%s)", filepath.Base(m.path), m.selectedBank.Code)

	if m.status != "" {
		header += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + m.form.View())
}

func (m ConvertModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	body := fmt.Sprintf(
		"%s\n\nRows: %d\nConverted: %d\nExcluded rows: %s\n\n(Esc to go back)",
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status),
		m.summary.TotalRows,
		m.summary.ValidTransactions,
		FormatRows(m.summary.InvalidTransactions),
	)

	return style.Render(body)
}

// Messages

type convertResultMsg struct {
	outputPath string
	summary    statement.Summary
	err        error
}

func (m ConvertModel) convertCmd(specs map[template.Field]string) tea.Cmd {
	path := m.path
	bankCode := m.selectedBank.Code
	svc := m.convertService
	histSvc := m.historyService

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return convertResultMsg{err: err}
		}
		defer f.Close()

		result, err := svc.Convert(filepath.Base(path), f, specs)
		if err != nil {
			return convertResultMsg{err: err}
		}

		outputPath := filepath.Join(filepath.Dir(path), result.Filename)
		if err := os.WriteFile(outputPath, []byte(result.Content), 0o644); err != nil {
			return convertResultMsg{err: err}
		}

		if histSvc != nil {
			ctx, cancel := DbCtx()
			defer cancel()

			_, _ = histSvc.Record(ctx, history.RecordParams{
				Filename:          filepath.Base(path),
				OutputFilename:    result.Filename,
				BankCode:          bankCode,
				TotalRows:         result.Summary.TotalRows,
				ValidTransactions: result.Summary.ValidTransactions,
				InvalidRows:       result.Summary.InvalidTransactions,
			})
		}

		return convertResultMsg{outputPath: outputPath, summary: result.Summary}
	}
}

func missingFields(err error) ([]template.Field, bool) {
	var verr *convert.ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}

	return verr.Missing, true
}

func fieldNames(fields []template.Field) string {
	s := ""
	for i, f := range fields {
		if i > 0 {
			s += ", "
		}

		s += string(f)
	}

	return s
}
