package command

// ID identifies one protocol command. The set of identifiers is closed and
// versioned with the wire protocol – new commands are added here and nowhere
// else.
type ID string

const (
	// Session lifecycle
	NewSession     ID = "newSession"
	Quit           ID = "quit"
	GetSessionList ID = "getSessionList"
	Status         ID = "status"

	// Navigation
	Get           ID = "get"
	GetCurrentURL ID = "getCurrentUrl"
	GetTitle      ID = "getTitle"
	Refresh       ID = "refresh"
	GoBack        ID = "goBack"
	GoForward     ID = "goForward"

	// Windows
	GetWindowHandles ID = "getWindowHandles"
	GetWindowHandle  ID = "getWindowHandle"
	Close            ID = "close"

	// Pointer device
	MouseClick       ID = "mouseClick"
	MouseDoubleClick ID = "mouseDoubleClick"
	MouseButtonDown  ID = "mouseButtonDown"
	MouseButtonUp    ID = "mouseButtonUp"
	MouseMoveTo      ID = "mouseMoveTo"
)

var known = map[ID]bool{
	NewSession:       true,
	Quit:             true,
	GetSessionList:   true,
	Status:           true,
	Get:              true,
	GetCurrentURL:    true,
	GetTitle:         true,
	Refresh:          true,
	GoBack:           true,
	GoForward:        true,
	GetWindowHandles: true,
	GetWindowHandle:  true,
	Close:            true,
	MouseClick:       true,
	MouseDoubleClick: true,
	MouseButtonDown:  true,
	MouseButtonUp:    true,
	MouseMoveTo:      true,
}

// IsKnown reports whether id belongs to the protocol command set. Unknown ids
// still dispatch – they resolve to the unsupported-command handler.
func (i ID) IsKnown() bool { return known[i] }

func (i ID) String() string { return string(i) }

// Known returns all protocol command identifiers. Order is unspecified.
func Known() []ID {
	out := make([]ID, 0, len(known))
	for id := range known {
		out = append(out, id)
	}
	return out
}
