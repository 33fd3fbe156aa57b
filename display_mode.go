package lcd1602

import "fmt"

// DisplayMode holds the display control settings. The controller can only
// set all three flags at once.
type DisplayMode struct {
	// Display shows the DDRAM contents.
	Display bool

	// Cursor shows the underline cursor.
	Cursor bool

	// Blink blinks the character at the cursor position.
	Blink bool
}

// DefaultDisplayMode has everything switched on.
var DefaultDisplayMode = DisplayMode{
	Display: true,
	Cursor:  true,
	Blink:   true,
}

// Byte encodes the display control instruction.
func (m DisplayMode) Byte() byte {
	b := byte(hd44780DisplayControl)
	if m.Display {
		b |= 0x04
	}
	if m.Cursor {
		b |= 0x02
	}
	if m.Blink {
		b |= 0x01
	}
	return b
}

func (m DisplayMode) String() string {
	return fmt.Sprintf("display=%t cursor=%t blink=%t (%#02x)", m.Display, m.Cursor, m.Blink, m.Byte())
}
