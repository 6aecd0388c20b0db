package display

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/colorbet/internal/game"
)

// ErrInputClosed is returned when the input stream ends before an answer is given
var ErrInputClosed = errors.New("input closed")

// Prompter asks for integers one line at a time
type Prompter struct {
	out    io.Writer
	styles Styles
	logger *log.Logger

	in    *bufio.Scanner
	once  sync.Once
	lines chan string
	err   error
}

var _ game.InputProvider = (*Prompter)(nil)

// NewPrompter creates a Prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer, styles Styles, logger *log.Logger) *Prompter {
	return &Prompter{
		out:    out,
		styles: styles,
		logger: logger.WithPrefix("prompt"),
		in:     bufio.NewScanner(in),
		lines:  make(chan string),
	}
}

// readLines feeds scanned lines to the prompter until the input ends.
// The reader can't be interrupted, so it runs on its own goroutine and
// PromptInt selects on the context instead.
func (p *Prompter) readLines() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- p.in.Text()
	}
	p.err = p.in.Err()
}

func (p *Prompter) nextLine(ctx context.Context) (string, error) {
	p.once.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", fmt.Errorf("reading input: %w", p.err)
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}

// PromptInt shows the prompt and reads lines until one parses as an integer in range
func (p *Prompter) PromptInt(ctx context.Context, prompt game.Prompt) (int, error) {
	if prompt.Kind == game.PromptCard || prompt.Kind == game.PromptCardCount {
		fmt.Fprintln(p.out, p.styles.IndexedCards(prompt.Player.Hand))
	}

	for {
		fmt.Fprintf(p.out, "%s %s ", prompt.Message, p.styles.Prompt.Render(">"))

		line, err := p.nextLine(ctx)
		if err != nil {
			fmt.Fprintln(p.out)
			return 0, err
		}

		v, err := ParseAnswer(line, prompt)
		if err != nil {
			p.logger.Debug("Rejected answer", "player", prompt.PlayerID, "input", line, "error", err)
			fmt.Fprintln(p.out, p.styles.Error.Render(err.Error()))
			continue
		}
		return v, nil
	}
}

// ParseAnswer converts a line of input into an answer for prompt
func ParseAnswer(line string, prompt game.Prompt) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("please enter a whole number between %d and %d", prompt.Min, prompt.Max)
	}
	if !prompt.InRange(v) {
		return 0, fmt.Errorf("%d is out of range, enter a number between %d and %d", v, prompt.Min, prompt.Max)
	}
	return v, nil
}
