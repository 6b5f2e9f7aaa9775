package ports

// Fullscreen is the single capability the display needs from the host to
// take over or release the whole screen.
type Fullscreen interface {
	Toggle() bool
	Active() bool
}
