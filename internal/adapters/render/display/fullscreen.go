package display

import (
	"sync"

	"github.com/bnema/lapwatch/internal/ports"
)

// AltScreen tracks whether the program owns the terminal's alternate screen
// buffer, the terminal's notion of fullscreen.
type AltScreen struct {
	mu     sync.Mutex
	active bool
}

var _ ports.Fullscreen = (*AltScreen)(nil)

func NewAltScreen(active bool) *AltScreen {
	return &AltScreen{active: active}
}

func (a *AltScreen) Toggle() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.active = !a.active
	return a.active
}

func (a *AltScreen) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.active
}
