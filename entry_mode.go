package lcd1602

import "fmt"

// CursorMode is the direction the cursor moves after a character is written.
type CursorMode uint8

// Supported cursor modes.
const (
	Increment CursorMode = iota // Move right
	Decrement                   // Move left
)

func (m CursorMode) String() string {
	if m == Decrement {
		return "decrement"
	}
	return "increment"
}

// EntryMode holds the entry mode settings.
type EntryMode struct {
	// Direction the cursor moves in after a write.
	Direction CursorMode

	// Shift the display instead of moving the cursor (autoscroll).
	Shift bool
}

// DefaultEntryMode moves the cursor right and does not shift the display.
var DefaultEntryMode = EntryMode{
	Direction: Increment,
	Shift:     false,
}

// Byte encodes the entry mode set instruction.
func (m EntryMode) Byte() byte {
	b := byte(hd44780EntryModeSet)
	if m.Direction == Increment {
		b |= 0x02
	}
	if m.Shift {
		b |= 0x01
	}
	return b
}

func (m EntryMode) String() string {
	return fmt.Sprintf("entry mode %s shift=%t (%#02x)", m.Direction, m.Shift, m.Byte())
}
