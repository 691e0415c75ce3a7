package command

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thesn0wdev/portfolio/internal/logging/events"
)

// Action performs the side effect behind a request and reports the outcome.
type Action func(req Request) Result

// Request encapsulates an action invocation against a link target.
type Request struct {
	ID     string
	Label  string
	Target string
	Action Action
}

// Result is delivered back to the UI once an action finishes.
type Result struct {
	ID    string
	Label string
	Info  string
	Err   error
}

// ErrNoTarget is returned for rows that have nothing to act on.
var ErrNoTarget = errors.New("nothing to copy")

// Bus coordinates the execution of link actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Action == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		res := req.Action(req)
		if res.ID == "" && res.Label == "" && res.Info == "" && res.Err == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", res))
		return res
	}
}

// WriteClipboard is the clipboard sink used by CopyLink. Tests replace it.
var WriteClipboard = clipboard.WriteAll

// CopyLink copies the request target to the system clipboard.
func CopyLink(req Request) Result {
	res := Result{ID: req.ID, Label: req.Label}
	if req.Target == "" {
		res.Err = fmt.Errorf("%s: %w", req.Label, ErrNoTarget)
		return res
	}
	if err := WriteClipboard(req.Target); err != nil {
		res.Err = fmt.Errorf("copy %s: %w", req.Label, err)
		return res
	}
	res.Info = fmt.Sprintf("Copied %s", req.Target)
	return res
}
