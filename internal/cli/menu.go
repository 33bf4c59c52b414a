package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alexanderramin/projects/internal/service"
)

// QuitSelection is the menu code that ends the session. A blank selection
// is read as QuitSelection.
const QuitSelection = -1

// LoopState is the state of the menu loop.
type LoopState int

const (
	Running LoopState = iota
	Terminated
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("LoopState(%d)", int(s))
	}
}

// MenuAction is one selectable menu entry.
type MenuAction struct {
	Code  int
	Label string
	Run   func(ctx context.Context, m *Menu) error
}

// Menu is the interactive command loop. It owns its input handle; nothing
// else reads from the console while it runs.
type Menu struct {
	in       *Input
	out      io.Writer
	projects service.ProjectService
	logger   *slog.Logger
	actions  []MenuAction
	state    LoopState
	turns    int
}

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithLogger sets the logger used for caught turn errors.
func WithLogger(logger *slog.Logger) MenuOption {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMenu builds a menu reading from in and writing to out, with the
// project actions registered.
func NewMenu(in io.Reader, out io.Writer, projects service.ProjectService, opts ...MenuOption) *Menu {
	if out == nil {
		out = io.Discard
	}
	m := &Menu{
		in:       NewInput(in, out),
		out:      out,
		projects: projects,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:    Running,
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, a := range projectActions() {
		if err := m.Register(a); err != nil {
			panic(err)
		}
	}
	return m
}

// Register adds an action to the menu. Codes must be unique and cannot be
// the quit code.
func (m *Menu) Register(a MenuAction) error {
	if a.Code == QuitSelection {
		return fmt.Errorf("menu code %d is reserved for quit", QuitSelection)
	}
	if a.Run == nil {
		return fmt.Errorf("menu action %d has no handler", a.Code)
	}
	if _, ok := m.lookup(a.Code); ok {
		return fmt.Errorf("menu code %d already registered", a.Code)
	}
	m.actions = append(m.actions, a)
	return nil
}

// State returns the current loop state.
func (m *Menu) State() LoopState {
	return m.state
}

// Run processes turns until the user quits. Errors from a turn are
// reported and the loop continues; none of them end the session.
func (m *Menu) Run(ctx context.Context) {
	for m.state == Running {
		m.turns++
		if err := m.turn(ctx); err != nil {
			m.reportError(ctx, err)
		}
	}
}

func (m *Menu) turn(ctx context.Context) error {
	m.printOperations()

	selection, err := m.selection()
	if err != nil {
		return err
	}
	return m.dispatch(ctx, selection)
}

func (m *Menu) printOperations() {
	fmt.Fprintln(m.out, "\nThese are the available selections. Press the Enter key to quit:")
	for _, a := range m.actions {
		fmt.Fprintln(m.out, "  "+a.Label)
	}
}

func (m *Menu) selection() (int, error) {
	n, err := m.in.ReadInt("Enter a menu selection")
	if err != nil {
		return 0, err
	}
	if n == nil {
		return QuitSelection, nil
	}
	return *n, nil
}

func (m *Menu) dispatch(ctx context.Context, selection int) error {
	if selection == QuitSelection {
		m.exit()
		return nil
	}

	action, ok := m.lookup(selection)
	if !ok {
		fmt.Fprintf(m.out, "\n%d is not a valid selection. Try again.\n", selection)
		return nil
	}
	m.logger.DebugContext(ctx, "menu_selection", "code", action.Code, "turn", m.turns)
	return action.Run(ctx, m)
}

func (m *Menu) lookup(code int) (MenuAction, bool) {
	for _, a := range m.actions {
		if a.Code == code {
			return a, true
		}
	}
	return MenuAction{}, false
}

func (m *Menu) exit() {
	fmt.Fprintln(m.out, "\nExiting the application.")
	m.state = Terminated
}

func (m *Menu) reportError(ctx context.Context, err error) {
	msg := err.Error()
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	fmt.Fprintf(m.out, "\nError: %s Try again.\n", msg)
	m.logger.WarnContext(ctx, "turn_failed",
		"turn", m.turns,
		"kind", errorKind(err),
		"error", err.Error(),
	)
}

func isPersistenceError(err error) bool {
	var pe *service.PersistenceError
	return errors.As(err, &pe)
}
