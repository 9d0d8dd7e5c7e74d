package types

// ResultKind tells the caller of the executor which UI side effect a command
// asks for.
type ResultKind int

const (
	// ResultText is ordinary output; Text may be empty
	ResultText ResultKind = iota
	// ResultClear wipes the transcript and shows the welcome banner again
	ResultClear
	// ResultClose closes the interactive session
	ResultClose
	// ResultImage renders Image above the accompanying Text
	ResultImage
)

func (k ResultKind) String() string {
	switch k {
	case ResultClear:
		return "clear"
	case ResultClose:
		return "close"
	case ResultImage:
		return "image"
	default:
		return "text"
	}
}
