package topology

import (
	"fmt"
	"strings"
)

// WrapMode selects which outer edges are eligible for wrap destinations.
type WrapMode int

// Supported wrap modes.
const (
	WrapBoth WrapMode = iota
	WrapHorizontal
	WrapVertical
)

var wrapModes = [...]WrapMode{WrapBoth, WrapHorizontal, WrapVertical}

// String returns the lowercase mode name.
func (m WrapMode) String() string {
	switch m {
	case WrapBoth:
		return "both"
	case WrapHorizontal:
		return "horizontal"
	case WrapVertical:
		return "vertical"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name.
func (m WrapMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *WrapMode) UnmarshalText(text []byte) error {
	parsed, err := ParseWrapMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseWrapMode parses a mode name. Empty input selects WrapBoth.
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return WrapBoth, nil
	case "horizontal", "h":
		return WrapHorizontal, nil
	case "vertical", "v":
		return WrapVertical, nil
	default:
		return 0, fmt.Errorf("unknown wrap mode %q", s)
	}
}

// Allows reports whether edges of type t receive destinations in this mode.
// Left/Right edges wrap horizontally, Top/Bottom vertically.
func (m WrapMode) Allows(t EdgeType) bool {
	switch m {
	case WrapHorizontal:
		return t.Vertical()
	case WrapVertical:
		return !t.Vertical()
	default:
		return true
	}
}
