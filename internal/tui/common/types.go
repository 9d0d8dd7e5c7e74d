package common

import "swmterm/pkg/types"

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Mode() types.Mode
	Transcript() string
	InputView() string
	HelpView() string
	StatusView() string
	Width() int
}
