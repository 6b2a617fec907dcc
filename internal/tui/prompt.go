package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vigenere/internal/input"
)

// Field indices into promptModel.inputs.
const (
	fieldKey = iota
	fieldPlainText
	fieldCount
)

// promptModel is the Bubble Tea model for the two-step prompt flow. The
// password field uses masked echo; enter advances to the plain-text field
// and then submits.
type promptModel struct {
	inputs     []textinput.Model
	focus      int
	done       bool
	quitByUser bool
}

func newPromptModel() promptModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "password"
	keyInput.Width = 40
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '*'
	keyInput.Focus()

	textInput := textinput.New()
	textInput.Placeholder = "plain text"
	textInput.Width = 40

	return promptModel{
		inputs: []textinput.Model{keyInput, textInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc/ctrl+c — cancels the flow; the collector reports ErrUserQuit.
//   - enter      — advances focus from the password to the plain-text
//     field, then submits.
//
// All other key events are forwarded to the focused input widget.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "enter":
			if m.focus == fieldKey {
				m.inputs[fieldKey].Blur()
				m.focus = fieldPlainText
				m.inputs[fieldPlainText].Focus()
				return m, textinput.Blink
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m promptModel) View() string {
	if m.done {
		return ""
	}

	out := titleStyle.Render("Vigenère") + "\n\n"
	out += input.PasswordPrompt + "[" + m.inputs[fieldKey].View() + "]\n"
	out += input.PlainTextPrompt + "[" + m.inputs[fieldPlainText].View() + "]\n\n"
	out += helpStyle.Render("esc cancel  enter next field / submit")
	return appStyle.Render(out)
}
