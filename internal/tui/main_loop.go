// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fleet-tracker/internal/service"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// mainLoopModel is the role-aware report browser. Captains see their own
// reports and can file new ones or cancel existing ones; operators see all
// reports and can confirm or reject them. The listing is served from the
// local cache when the server is unreachable.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	reports   []models.Report
	idx       int
	loading   bool
	fromCache bool
	status    string
	errMsg    string
	detail    bool

	creating     bool
	createInputs []textinput.Model
	createFocus  int
	submitting   bool

	logout bool
}

const (
	createFieldFish = iota
	createFieldWeight
	createFieldLocation
	createFieldRoute
	createFieldNotes
)

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadReports()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		m.loading = false
		m.fromCache = msg.fromCache
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.reports = msg.reports
		if m.idx >= len(m.reports) {
			m.idx = len(m.reports) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case transitionDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка (%s): %v", msg.action, humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("Отчёт #%d: %s", msg.report.ReportID, statusLabel(msg.report.Status))
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadReports()
	case reportCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.creating = false
		m.status = fmt.Sprintf("Отчёт #%d подан", msg.report.ReportID)
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadReports()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.creating {
			return m.updateCreateForm(msg)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) && !m.creating {
		return m, tea.Quit
	}

	if m.creating {
		return m.updateCreateForm(msg)
	}

	if m.detail {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.detail = false
		case key.Matches(keyMsg, keys.copy):
			m.copyCurrent()
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.reports)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.reports) > 0 {
			m.detail = true
		}
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		m.status = ""
		return m, m.cmdLoadReports()
	case key.Matches(keyMsg, keys.copy):
		m.copyCurrent()
	case key.Matches(keyMsg, keys.newItem):
		if m.user.Role == models.RoleCaptain {
			m.startCreateForm()
		}
	case key.Matches(keyMsg, keys.cancel):
		if m.user.Role == models.RoleCaptain {
			if report, ok := m.current(); ok {
				return m, m.cmdTransition("отмена", report.ReportID, m.services.ReportService.Cancel)
			}
		}
	case key.Matches(keyMsg, keys.approve):
		if m.user.Role == models.RoleOperator {
			if report, ok := m.current(); ok {
				return m, m.cmdTransition("подтверждение", report.ReportID, m.services.ReportService.Approve)
			}
		}
	case key.Matches(keyMsg, keys.reject):
		if m.user.Role == models.RoleOperator {
			if report, ok := m.current(); ok {
				return m, m.cmdTransition("отклонение", report.ReportID, m.services.ReportService.Reject)
			}
		}
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.creating {
		return m.viewCreateForm()
	}
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

// ── list screen ──────────────────────────────────────────────────────────────

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if len(m.reports) == 0 {
		b.WriteString("Нет отчётов\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-5s │ %-16s │ %8s │ %-18s │ %s\n", "ID", "Рыба", "Вес, кг", "Место", "Статус"))
		b.WriteString("  " + strings.Repeat("─", 70) + "\n")
		for i, report := range m.reports {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-5d │ %-16s │ %8.1f │ %-18s │ %s\n",
				cursor,
				report.ReportID,
				fitText(report.FishType, 16),
				report.Weight,
				fitText(report.Location, 18),
				statusLabel(report.Status),
			))
		}
	}

	if m.fromCache {
		b.WriteString("\n")
		b.WriteString(staleStyle.Render("(офлайн: данные из локального кэша)"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage(m.listTitle(), strings.TrimRight(b.String(), "\n"), m.listHotkeys())
}

func (m mainLoopModel) listTitle() string {
	who := valueOrDash(m.user.FullName)
	if who == "-" {
		who = m.user.Email
	}
	return fmt.Sprintf("ОТЧЁТЫ ОБ УЛОВЕ — %s (%s)", who, roleLabel(m.user.Role))
}

func (m mainLoopModel) listHotkeys() string {
	common := "enter: детали │ r: обновить │ c: копировать │ l: перелогин │ q: выход"
	if m.user.Role == models.RoleOperator {
		return "a: подтвердить │ x: отклонить │ " + common
	}
	return "n: новый отчёт │ d: отменить │ " + common
}

// ── detail screen ────────────────────────────────────────────────────────────

func (m mainLoopModel) viewDetail() string {
	report, ok := m.current()
	if !ok {
		return renderPage("ОТЧЁТ", "", "esc: назад")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID        : %d\n", report.ReportID))
	b.WriteString(fmt.Sprintf("Рыба      : %s\n", valueOrDash(report.FishType)))
	b.WriteString(fmt.Sprintf("Вес, кг   : %.1f\n", report.Weight))
	b.WriteString(fmt.Sprintf("Место     : %s\n", valueOrDash(report.Location)))
	b.WriteString(fmt.Sprintf("Заметки   : %s\n", valueOrDash(report.Notes)))
	b.WriteString(fmt.Sprintf("Статус    : %s\n", statusLabel(report.Status)))
	if report.RouteID != nil {
		b.WriteString(fmt.Sprintf("Рейс      : %d\n", *report.RouteID))
	} else {
		b.WriteString("Рейс      : -\n")
	}
	b.WriteString(fmt.Sprintf("Капитан   : %d\n", report.UserID))
	b.WriteString(fmt.Sprintf("Подан     : %s\n", report.CreatedAt.Format(time.RFC3339)))

	return renderPage(fmt.Sprintf("ОТЧЁТ #%d", report.ReportID), strings.TrimRight(b.String(), "\n"), "esc: назад │ c: копировать")
}

// ── create form ──────────────────────────────────────────────────────────────

func (m *mainLoopModel) startCreateForm() {
	fields := make([]textinput.Model, 5)

	fields[createFieldFish] = textinput.New()
	fields[createFieldFish].Placeholder = "вид рыбы"
	fields[createFieldFish].Width = 40
	fields[createFieldFish].Focus()

	fields[createFieldWeight] = textinput.New()
	fields[createFieldWeight].Placeholder = "вес, кг"
	fields[createFieldWeight].Width = 40

	fields[createFieldLocation] = textinput.New()
	fields[createFieldLocation].Placeholder = "место улова"
	fields[createFieldLocation].Width = 40

	fields[createFieldRoute] = textinput.New()
	fields[createFieldRoute].Placeholder = "ID рейса (опционально)"
	fields[createFieldRoute].Width = 40

	fields[createFieldNotes] = textinput.New()
	fields[createFieldNotes].Placeholder = "заметки"
	fields[createFieldNotes].Width = 40

	m.creating = true
	m.createInputs = fields
	m.createFocus = 0
	m.errMsg = ""
	m.status = ""
}

func (m mainLoopModel) updateCreateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.creating = false
			m.submitting = false
			m.errMsg = ""
			return m, nil
		case "tab", "down":
			m.createInputs[m.createFocus].Blur()
			m.createFocus = (m.createFocus + 1) % len(m.createInputs)
			m.createInputs[m.createFocus].Focus()
			return m, nil
		case "shift+tab", "up":
			m.createInputs[m.createFocus].Blur()
			m.createFocus = (m.createFocus - 1 + len(m.createInputs)) % len(m.createInputs)
			m.createInputs[m.createFocus].Focus()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			req, err := m.buildCreateRequest()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdCreate(req)
		}
	}

	var cmd tea.Cmd
	m.createInputs[m.createFocus], cmd = m.createInputs[m.createFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) buildCreateRequest() (models.ReportCreateRequest, error) {
	fish := strings.TrimSpace(m.createInputs[createFieldFish].Value())
	weightRaw := strings.TrimSpace(m.createInputs[createFieldWeight].Value())
	location := strings.TrimSpace(m.createInputs[createFieldLocation].Value())
	routeRaw := strings.TrimSpace(m.createInputs[createFieldRoute].Value())
	notes := strings.TrimSpace(m.createInputs[createFieldNotes].Value())

	if fish == "" || weightRaw == "" || location == "" {
		return models.ReportCreateRequest{}, fmt.Errorf("рыба, вес и место обязательны")
	}

	weight, err := strconv.ParseFloat(strings.ReplaceAll(weightRaw, ",", "."), 64)
	if err != nil || weight <= 0 {
		return models.ReportCreateRequest{}, fmt.Errorf("вес должен быть положительным числом")
	}

	req := models.ReportCreateRequest{
		FishType: fish,
		Weight:   weight,
		Location: location,
		Notes:    notes,
	}

	if routeRaw != "" {
		routeID, err := strconv.ParseInt(routeRaw, 10, 64)
		if err != nil || routeID <= 0 {
			return models.ReportCreateRequest{}, fmt.Errorf("ID рейса должен быть положительным числом")
		}
		req.RouteID = &routeID
	}

	return req, nil
}

func (m mainLoopModel) viewCreateForm() string {
	labels := []string{"Рыба", "Вес, кг", "Место", "Рейс", "Заметки"}

	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(padLabel(label))
		b.WriteString("│ [")
		b.WriteString(m.createInputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Подать отчёт...]\n")
	} else {
		b.WriteString("\n[Подать отчёт]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("НОВЫЙ ОТЧЁТ ОБ УЛОВЕ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подать")
}

// ── commands and helpers ─────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadReports() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReportService

	return func() tea.Msg {
		reports, fromCache, err := svc.List(ctx)
		return reportsLoadedMsg{reports: reports, fromCache: fromCache, err: err}
	}
}

func (m mainLoopModel) cmdTransition(action string, reportID int64, transition func(context.Context, int64) (models.Report, error)) tea.Cmd {
	ctx := m.ctx

	return func() tea.Msg {
		report, err := transition(ctx, reportID)
		return transitionDoneMsg{action: action, report: report, err: err}
	}
}

func (m mainLoopModel) cmdCreate(req models.ReportCreateRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ReportService

	return func() tea.Msg {
		report, err := svc.Create(ctx, req)
		return reportCreatedMsg{report: report, err: err}
	}
}

func (m mainLoopModel) current() (models.Report, bool) {
	if len(m.reports) == 0 || m.idx < 0 || m.idx >= len(m.reports) {
		return models.Report{}, false
	}
	return m.reports[m.idx], true
}

func (m *mainLoopModel) copyCurrent() {
	report, ok := m.current()
	if !ok {
		m.status = "Нечего копировать"
		return
	}

	line := fmt.Sprintf("#%d %s %.1f кг %s [%s]", report.ReportID, report.FishType, report.Weight, report.Location, statusLabel(report.Status))
	if err := clipboard.WriteAll(line); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return
	}
	m.status = "Скопировано"
}

func statusLabel(s models.ReportStatus) string {
	switch s {
	case models.ReportStatusNew:
		return "новый"
	case models.ReportStatusConfirmed:
		return "подтверждён"
	case models.ReportStatusRejected:
		return "отклонён"
	case models.ReportStatusCancelled:
		return "отменён"
	default:
		return string(s)
	}
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleOperator:
		return "оператор"
	case models.RoleCaptain:
		return "капитан"
	default:
		return string(r)
	}
}
