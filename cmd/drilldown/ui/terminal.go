package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"drilldown/internal/ingest"
	"drilldown/internal/logging"
	"drilldown/internal/navigation"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminal is the interactive navigation.Renderer. Each prompt runs as its own
// short-lived bubbletea program; tables and charts are printed inline so they
// stay in the scrollback.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	styles Styles
	width  int
}

var _ navigation.Renderer = (*Terminal)(nil)

// TerminalOption customizes a Terminal.
type TerminalOption func(*Terminal)

// WithInput reads keys from r instead of stdin.
func WithInput(r io.Reader) TerminalOption {
	return func(t *Terminal) { t.in = r }
}

// WithOutput writes to w instead of stdout.
func WithOutput(w io.Writer) TerminalOption {
	return func(t *Terminal) { t.out = w }
}

// WithWidth caps the bar area of charts.
func WithWidth(cols int) TerminalOption {
	return func(t *Terminal) { t.width = cols }
}

// NewTerminal returns a terminal renderer using styles.
func NewTerminal(styles Styles, opts ...TerminalOption) *Terminal {
	t := &Terminal{out: os.Stdout, styles: styles}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Select shows the prompt and blocks until an option is chosen.
func (t *Terminal) Select(ctx context.Context, p navigation.Prompt) (int, error) {
	final, err := t.run(ctx, newSelector(p, t.styles))
	if err != nil {
		return 0, err
	}
	m := final.(selectorModel)
	if !m.done {
		return 0, navigation.ErrAborted
	}
	logging.Get(logging.CategoryRender).Debugw("option selected", "prompt", p.Title, "key", m.chosen.Key)
	return m.chosen.Key, nil
}

// Table prints an aggregate table.
func (t *Terminal) Table(_ context.Context, table navigation.Table) error {
	_, err := fmt.Fprintln(t.out, ActionTable(table).View(t.styles))
	return err
}

// BarChart prints an hourly chart.
func (t *Terminal) BarChart(_ context.Context, c navigation.Chart) error {
	_, err := fmt.Fprintln(t.out, BarChart(t.styles, c, t.width))
	return err
}

// Notice prints a status line.
func (t *Terminal) Notice(_ context.Context, msg string) error {
	_, err := fmt.Fprintln(t.out, t.styles.Warning.Render(msg))
	return err
}

// AskDirectory asks for a directory until validate accepts the answer.
func (t *Terminal) AskDirectory(ctx context.Context, question, initial string, validate func(string) error) (string, error) {
	final, err := t.run(ctx, newTextPrompt(question, initial, validate, t.styles))
	if err != nil {
		return "", err
	}
	m := final.(textPromptModel)
	if !m.done {
		return "", navigation.ErrAborted
	}
	return m.value, nil
}

// Confirm asks a yes/no question, highlighting def first.
func (t *Terminal) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	yes := navigation.Option{Key: 1, Label: "y"}
	no := navigation.Option{Key: 0, Label: "n"}
	options := []navigation.Option{no, yes}
	if def {
		options = []navigation.Option{yes, no}
	}
	key, err := t.Select(ctx, navigation.Prompt{Title: question, Options: options})
	if err != nil {
		return false, err
	}
	return key == yes.Key, nil
}

// Load runs load while showing one progress bar per ingest task.
func (t *Terminal) Load(ctx context.Context, load func(context.Context, ingest.Progress) (*ingest.Result, error)) (*ingest.Result, error) {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(t.styles), t.programOptions(ctx)...)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		res, err := load(loadCtx, programProgress{p: p})
		p.Send(loadDoneMsg{result: res, err: err})
	}()

	final, runErr := p.Run()
	cancel()
	<-finished

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, fmt.Errorf("progress view failed: %w", runErr)
	}
	m := final.(progressModel)
	if !m.done {
		return nil, navigation.ErrAborted
	}
	return m.result, m.err
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, navigation.ErrAborted
		}
		return nil, fmt.Errorf("terminal prompt failed: %w", err)
	}
	return final, nil
}

func (t *Terminal) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(t.out)}
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}
	return opts
}
