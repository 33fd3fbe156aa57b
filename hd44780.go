package lcd1602

import "time"

// HD44780 instruction set.
const (
	hd44780ClearDisplay   = 0x01
	hd44780ReturnHome     = 0x02
	hd44780EntryModeSet   = 0x04
	hd44780DisplayControl = 0x08
	hd44780CursorShift    = 0x10
	hd44780DisplayShift   = 0x18
	hd44780FunctionSet    = 0x20
	hd44780SetDDRAMAddr   = 0x80

	hd44780ShiftRight = 0x04
	hd44780DDRAMMask  = 0x7f
)

// Function set arguments used during initialization.
const (
	hd44780Force8Bit     = 0x33 // two 0x3 nibbles
	hd44780Select4Bit    = 0x32 // 0x3 then 0x2 nibble
	hd44780Wakeup8Bit    = hd44780FunctionSet | 0x10
	hd44780Function4Bit  = hd44780FunctionSet | 0x08 // 4-bit, 2 lines, 5x7
	hd44780Function8Bit  = hd44780FunctionSet | 0x10 | 0x08
	hd44780DisplayOnInit = 0x0e // display on, cursor on, blink off
	hd44780EntryInit8Bit = 0x07
)

// Settle times.
const (
	powerOnDelay     = 15 * time.Millisecond
	wakeupDelay      = 5 * time.Millisecond
	commandDelay     = 100 * time.Microsecond
	enablePulseWidth = 2 * time.Millisecond
)

// DDRAM row offsets of a two line display.
var rowOffsets = [...]byte{0x00, 0x40}
