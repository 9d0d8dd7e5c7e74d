package messages

import "swmterm/internal/content"

// BootTickMsg prints the next boot line. Ticks from a cancelled boot carry
// an old generation and are dropped.
type BootTickMsg struct {
	Gen int
}

// ContentLoadedMsg reports the first index load.
type ContentLoadedMsg struct {
	Stats content.Stats
	Err   error
}

// ContentReloadedMsg reports a reload triggered by the index watcher.
type ContentReloadedMsg struct {
	Path  string
	Stats content.Stats
	Err   error
}
