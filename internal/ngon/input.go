package ngon

import (
	"sync/atomic"

	"github.com/vovakirdan/superngon/internal/core"
)

// Intent is the player input sampled for one tick.
type Intent struct {
	Left  bool // Held: rotate the cursor counter-clockwise
	Right bool // Held: rotate the cursor clockwise
	Stop  bool // Edge: abandon the run
}

// IntentFromFrame converts a platform input frame into an Intent.
func IntentFromFrame(f core.InputFrame) Intent {
	return Intent{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
		Stop:  f.Has(core.ActionStop),
	}
}

// Input is polled exactly once per running tick.
type Input interface {
	Poll() Intent
}

// InputFunc adapts a function to the Input interface.
type InputFunc func() Intent

// Poll calls f.
func (f InputFunc) Poll() Intent {
	return f()
}

// NoInput never holds anything.
var NoInput Input = InputFunc(func() Intent { return Intent{} })

// LimitInput passes through in for n polls and then asks to stop.
func LimitInput(in Input, n uint64) Input {
	var polls atomic.Uint64
	return InputFunc(func() Intent {
		if polls.Add(1) > n {
			return Intent{Stop: true}
		}
		return in.Poll()
	})
}

// Command is a discrete request from the player or a host.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandStop
	CommandIncreaseSides
	CommandDecreaseSides
	CommandAcknowledge
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandStart:
		return "start"
	case CommandStop:
		return "stop"
	case CommandIncreaseSides:
		return "increase-sides"
	case CommandDecreaseSides:
		return "decrease-sides"
	case CommandAcknowledge:
		return "acknowledge"
	default:
		return "unknown"
	}
}

// CommandFor maps an edge-triggered action to its command.
func CommandFor(a core.Action) Command {
	switch a {
	case core.ActionStart:
		return CommandStart
	case core.ActionStop:
		return CommandStop
	case core.ActionIncreaseSides:
		return CommandIncreaseSides
	case core.ActionDecreaseSides:
		return CommandDecreaseSides
	default:
		return CommandNone
	}
}
