package state

// Context is the input mode that receives keystrokes. Exactly one is active.
type Context int

const (
	ContextFileviewer Context = iota
	ContextStringsearch
	ContextStringsearchreplace
	ContextTerminal
	ContextHelp
)

func (c Context) String() string {
	switch c {
	case ContextFileviewer:
		return "Fileviewer"
	case ContextStringsearch:
		return "Stringsearch"
	case ContextStringsearchreplace:
		return "Stringsearchreplace"
	case ContextTerminal:
		return "Terminal"
	case ContextHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Focus selects the list that navigation keys act on.
type Focus int

const (
	FocusFilelist Focus = iota
	FocusRecentfiles
	FocusFilestrlist
)

func (f Focus) String() string {
	switch f {
	case FocusFilelist:
		return "Filelist"
	case FocusRecentfiles:
		return "Recentfiles"
	case FocusFilestrlist:
		return "Filestrlist"
	default:
		return "Unknown"
	}
}

// focusOrder is the Tab cycle.
var focusOrder = []Focus{FocusFilelist, FocusFilestrlist, FocusRecentfiles}
