package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/superngon/internal/core"
	"github.com/vovakirdan/superngon/internal/ngon"
)

// DefaultHoldWindow is how long a direction counts as held after its last
// key event. Terminals only report presses, so holding a key is seen as the
// stream of auto-repeat presses; the window has to bridge the gap between
// them.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldInput turns key presses into held directions for the engine.
// Press is called from the Bubble Tea goroutine and Poll from the engine's
// tick goroutine.
type HeldInput struct {
	mu    sync.Mutex
	hold  time.Duration
	now   func() time.Time
	left  time.Time // Last press of each direction
	right time.Time
}

var _ ngon.Input = (*HeldInput)(nil)

// NewHeldInput creates a held-input tracker with the given hold window.
func NewHeldInput(hold time.Duration) *HeldInput {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &HeldInput{hold: hold, now: time.Now}
}

// Press records a key event. Only held actions are tracked; pressing one
// direction releases the other, as a terminal only auto-repeats the last key.
func (h *HeldInput) Press(a core.Action) {
	if !a.IsHeld() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	switch a {
	case core.ActionLeft:
		h.left = h.now()
		h.right = time.Time{}
	case core.ActionRight:
		h.right = h.now()
		h.left = time.Time{}
	}
}

// Release forgets both directions.
func (h *HeldInput) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.left, h.right = time.Time{}, time.Time{}
}

// Poll reports the directions held right now.
func (h *HeldInput) Poll() ngon.Intent {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	frame := core.NewInputFrame()
	if h.held(h.left, now) {
		frame.Set(core.ActionLeft)
	}
	if h.held(h.right, now) {
		frame.Set(core.ActionRight)
	}
	return ngon.IntentFromFrame(frame)
}

func (h *HeldInput) held(pressed, now time.Time) bool {
	return !pressed.IsZero() && now.Sub(pressed) < h.hold
}
