package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/colorbet/internal/game"
)

// ErrPromptAborted is returned when the player quits a TUI prompt
var ErrPromptAborted = errors.New("prompt aborted")

// promptModel is the bubbletea model for a single integer prompt
type promptModel struct {
	prompt game.Prompt
	styles Styles
	input  textinput.Model

	value   int
	answer  bool
	aborted bool
	errMsg  string
}

func newPromptModel(prompt game.Prompt, styles Styles) promptModel {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", prompt.Min, prompt.Max)
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.CharLimit = 6
	ti.Width = 10
	ti.Focus()

	return promptModel{prompt: prompt, styles: styles, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			v, err := ParseAnswer(m.input.Value(), m.prompt)
			if err != nil {
				m.errMsg = err.Error()
				m.input.SetValue("")
				return m, nil
			}
			m.value = v
			m.answer = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.answer || m.aborted {
		return ""
	}

	var b strings.Builder
	if m.prompt.Kind == game.PromptCard || m.prompt.Kind == game.PromptCardCount {
		b.WriteString(m.styles.IndexedCards(m.prompt.Player.Hand))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.TeamStyle(m.prompt.Player.Team).Render(m.prompt.Message))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Label.Render("enter to confirm, esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// TUIPrompter asks for each integer with a small bubbletea program
type TUIPrompter struct {
	in     io.Reader
	out    io.Writer
	styles Styles
	logger *log.Logger
}

var _ game.InputProvider = (*TUIPrompter)(nil)

// NewTUIPrompter creates a TUIPrompter using in and out as the terminal
func NewTUIPrompter(in io.Reader, out io.Writer, styles Styles, logger *log.Logger) *TUIPrompter {
	return &TUIPrompter{
		in:     in,
		out:    out,
		styles: styles,
		logger: logger.WithPrefix("tui"),
	}
}

// PromptInt runs a program until the player enters a valid integer or quits
func (t *TUIPrompter) PromptInt(ctx context.Context, prompt game.Prompt) (int, error) {
	program := tea.NewProgram(newPromptModel(prompt, t.styles),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}
	if err != nil {
		return 0, fmt.Errorf("running prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return 0, fmt.Errorf("unexpected model %T", final)
	}
	if m.aborted || !m.answer {
		t.logger.Info("Prompt aborted", "player", prompt.PlayerID, "prompt", prompt.Kind)
		return 0, ErrPromptAborted
	}
	return m.value, nil
}
