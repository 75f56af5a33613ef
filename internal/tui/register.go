package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/fleet-tracker/internal/service"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders text inputs for email, password, password confirmation, full name,
// company and license, plus a role switch toggled with left/right arrows.
// On success a [RegisterResult] message is produced; the model then resets
// the form and navigates back to the menu, passing a [RegisterSuccessNotice]
// payload.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	role       models.Role
	submitting bool
	errMsg     string
}

const (
	regFieldEmail = iota
	regFieldPassword
	regFieldRepeat
	regFieldFullName
	regFieldCompany
	regFieldLicense
)

// NewRegisterModel creates a [RegisterModel] with pre-configured text inputs.
// The email field receives focus immediately; the password fields use masked
// echo. The role defaults to captain.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, 6)

	fields[regFieldEmail] = textinput.New()
	fields[regFieldEmail].Placeholder = "email"
	fields[regFieldEmail].CharLimit = 64
	fields[regFieldEmail].Width = 40
	fields[regFieldEmail].Focus()

	fields[regFieldPassword] = textinput.New()
	fields[regFieldPassword].Placeholder = "password"
	fields[regFieldPassword].EchoMode = textinput.EchoPassword
	fields[regFieldPassword].EchoCharacter = '*'
	fields[regFieldPassword].Width = 40

	fields[regFieldRepeat] = textinput.New()
	fields[regFieldRepeat].Placeholder = "repeat password"
	fields[regFieldRepeat].EchoMode = textinput.EchoPassword
	fields[regFieldRepeat].EchoCharacter = '*'
	fields[regFieldRepeat].Width = 40

	fields[regFieldFullName] = textinput.New()
	fields[regFieldFullName].Placeholder = "full name"
	fields[regFieldFullName].Width = 40

	fields[regFieldCompany] = textinput.New()
	fields[regFieldCompany].Placeholder = "company"
	fields[regFieldCompany].Width = 40

	fields[regFieldLicense] = textinput.New()
	fields[regFieldLicense].Placeholder = "license"
	fields[regFieldLicense].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
		role:   models.RoleCaptain,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] — clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the menu.
//   - esc              — cancels and navigates back to the menu.
//   - tab / shift+tab  — moves focus between inputs.
//   - left / right     — toggles the role between captain and operator.
//   - enter            — validates inputs (email and passwords required;
//     passwords must match) and dispatches the async registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		email := result.User.Email
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Email: email},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "left", "right":
			m.toggleRole()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[regFieldEmail].Value())
			pass := m.inputs[regFieldPassword].Value()
			repeat := m.inputs[regFieldRepeat].Value()

			if email == "" || pass == "" || repeat == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Email:       email,
				Password:    pass,
				Role:        m.role,
				FullName:    strings.TrimSpace(m.inputs[regFieldFullName].Value()),
				CompanyName: strings.TrimSpace(m.inputs[regFieldCompany].Value()),
				License:     strings.TrimSpace(m.inputs[regFieldLicense].Value()),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a two-column
// table with all input fields, the role switch, a submission indicator, and
// an optional error message.
func (m *RegisterModel) View() string {
	labels := []string{"Email", "Пароль", "Повтор пароля", "ФИО", "Компания", "Лицензия"}

	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(padLabel(label))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	b.WriteString(padLabel("Роль"))
	b.WriteString("│ ")
	b.WriteString(roleSwitchView(m.role))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ ←/→: роль │ enter: подтвердить")
}

func padLabel(label string) string {
	// column is 15 cells wide; Cyrillic runes are one cell each
	width := 15
	pad := width - len([]rune(label))
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad)
}

func roleSwitchView(role models.Role) string {
	if role == models.RoleOperator {
		return "  капитан  ‹оператор›"
	}
	return "  ‹капитан›  оператор"
}

func (m *RegisterModel) toggleRole() {
	if m.role == models.RoleCaptain {
		m.role = models.RoleOperator
	} else {
		m.role = models.RoleCaptain
	}
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, req)
		return RegisterResult{
			User: user,
			Err:  err,
		}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.role = models.RoleCaptain
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
