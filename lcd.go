// Package lcd1602 drives HD44780 compatible character displays, commonly
// sold as 1602 (16x2) modules, over an 8-bit or 4-bit parallel bus or a
// PCF8574 I²C backpack.
//
// The driver is write-only. Every operation blocks until the controller had
// time to process the instruction.
package lcd1602

import (
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3/i2c"
)

// Direction to shift the cursor or the display in.
type Direction uint8

// Supported directions.
const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// LCD is an initialized character display.
type LCD struct {
	bus         DataBus
	delay       Delay
	entryMode   EntryMode
	displayMode DisplayMode
	closer      io.Closer
}

// New8Bit initializes a display on an 8-bit parallel bus.
func New8Bit(pins EightBitPins, delay Delay) (*LCD, error) {
	b, err := NewEightBitBus(pins)
	if err != nil {
		return nil, err
	}
	return newLCD(b, delay, true)
}

// New4Bit initializes a display on a 4-bit parallel bus.
func New4Bit(pins FourBitPins, delay Delay) (*LCD, error) {
	b, err := NewFourBitBus(pins)
	if err != nil {
		return nil, err
	}
	return newLCD(b, delay, false)
}

// NewI2C initializes a display behind a PCF8574 backpack at addr.
func NewI2C(bus i2c.Bus, addr uint16, delay Delay) (*LCD, error) {
	b, err := NewI2CBus(bus, addr)
	if err != nil {
		return nil, err
	}
	return newLCD(b, delay, false)
}

// NewParallel initializes a display on whichever parallel bus width selected.
func NewParallel(width BusWidth, delay Delay) (*LCD, error) {
	switch width.Bits() {
	case 4:
		return newLCD(width, delay, false)
	case 8:
		return newLCD(width, delay, true)
	default:
		return nil, ErrNoBus
	}
}

func newLCD(bus DataBus, delay Delay, eightBit bool) (*LCD, error) {
	if delay == nil {
		delay = DefaultDelay
	}
	d := &LCD{
		bus:         bus,
		delay:       delay,
		entryMode:   DefaultEntryMode,
		displayMode: DefaultDisplayMode,
	}

	var err error
	if eightBit {
		err = d.init8Bit()
	} else {
		err = d.init4Bit()
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

type initStep struct {
	cmd  byte
	wait time.Duration
}

func (d *LCD) init4Bit() error {
	return d.initialize([]initStep{
		{hd44780Force8Bit, wakeupDelay},
		{hd44780Select4Bit, commandDelay},
		{hd44780Function4Bit, commandDelay},
		{hd44780DisplayOnInit, commandDelay},
		{hd44780ClearDisplay, commandDelay},
		{d.entryMode.Byte(), commandDelay},
		{hd44780SetDDRAMAddr, commandDelay},
	})
}

func (d *LCD) init8Bit() error {
	return d.initialize([]initStep{
		{hd44780Wakeup8Bit, wakeupDelay},
		{hd44780Function8Bit, commandDelay},
		{hd44780DisplayOnInit, commandDelay},
		{hd44780ClearDisplay, commandDelay},
		{hd44780EntryInit8Bit, commandDelay},
		{d.entryMode.Byte(), commandDelay},
	})
}

func (d *LCD) initialize(steps []initStep) error {
	logger.Debug().Stringer("bus", d.bus).Msg("initializing display")
	d.delay.Sleep(powerOnDelay)
	for i, step := range steps {
		logger.Debug().Int("step", i).Hex("cmd", []byte{step.cmd}).Dur("wait", step.wait).Msg("init")
		if err := d.bus.Write(step.cmd, false, d.delay); err != nil {
			return fmt.Errorf("lcd1602: initialization step %d: %w", i, err)
		}
		d.delay.Sleep(step.wait)
	}
	return nil
}

func (d *LCD) String() string {
	return fmt.Sprintf("HD44780 LCD on %s", d.bus)
}

// Close releases the bus if it was opened by this package.
func (d *LCD) Close() error {
	if d.closer == nil {
		return nil
	}
	err := d.closer.Close()
	d.closer = nil
	return err
}

// Halt turns the display off.
func (d *LCD) Halt() error {
	return d.SetDisplay(false)
}

// EntryMode returns the current entry mode.
func (d *LCD) EntryMode() EntryMode {
	return d.entryMode
}

// DisplayMode returns the current display mode.
func (d *LCD) DisplayMode() DisplayMode {
	return d.displayMode
}

func (d *LCD) command(cmd byte) error {
	if err := d.bus.Write(cmd, false, d.delay); err != nil {
		return err
	}
	d.delay.Sleep(commandDelay)
	return nil
}

// Reset returns the cursor home and unshifts the display.
func (d *LCD) Reset() error {
	return d.command(hd44780ReturnHome)
}

// Clear clears the display.
func (d *LCD) Clear() error {
	return d.command(hd44780ClearDisplay)
}

// SetDisplayMode sets all display control flags at once.
func (d *LCD) SetDisplayMode(mode DisplayMode) error {
	d.displayMode = mode
	return d.command(d.displayMode.Byte())
}

// SetDisplay switches the display on or off.
func (d *LCD) SetDisplay(on bool) error {
	d.displayMode.Display = on
	return d.command(d.displayMode.Byte())
}

// SetCursorVisibility shows or hides the cursor.
func (d *LCD) SetCursorVisibility(on bool) error {
	d.displayMode.Cursor = on
	return d.command(d.displayMode.Byte())
}

// SetCursorBlink enables or disables cursor blinking.
func (d *LCD) SetCursorBlink(on bool) error {
	d.displayMode.Blink = on
	return d.command(d.displayMode.Byte())
}

// SetAutoscroll shifts the display on every write instead of the cursor.
func (d *LCD) SetAutoscroll(shift bool) error {
	d.entryMode.Shift = shift
	return d.command(d.entryMode.Byte())
}

// SetCursorMode sets the direction the cursor moves in after a write.
func (d *LCD) SetCursorMode(mode CursorMode) error {
	d.entryMode.Direction = mode
	return d.command(d.entryMode.Byte())
}

// SetCursorPos sets the DDRAM address. Only the lower 7 bits are used, the
// second line of a 1602 display starts at 0x40.
func (d *LCD) SetCursorPos(pos byte) error {
	return d.command(hd44780SetDDRAMAddr | pos&hd44780DDRAMMask)
}

// MoveTo moves the cursor to col on row 0 or 1.
func (d *LCD) MoveTo(row, col int) error {
	if row < 0 || row >= len(rowOffsets) || col < 0 || col >= 0x40 {
		return fmt.Errorf("lcd1602: position (%d,%d) out of range", row, col)
	}
	return d.SetCursorPos(rowOffsets[row] + byte(col))
}

// ShiftCursor moves the cursor one position without changing DDRAM.
func (d *LCD) ShiftCursor(dir Direction) error {
	return d.command(hd44780CursorShift | shiftBits(dir))
}

// ShiftDisplay shifts the whole display one position.
func (d *LCD) ShiftDisplay(dir Direction) error {
	return d.command(hd44780DisplayShift | shiftBits(dir))
}

func shiftBits(dir Direction) byte {
	if dir == Right {
		return hd44780ShiftRight
	}
	return 0
}

// SetBacklight switches the backlight of an I²C backpack. The display control
// byte is sent again so the expander latches the new state.
func (d *LCD) SetBacklight(on bool) error {
	b, ok := d.bus.(*I2CBus)
	if !ok {
		return ErrNotSupported
	}
	b.SetBacklight(on)
	return d.command(d.displayMode.Byte())
}

// WriteByte writes one character code.
func (d *LCD) WriteByte(c byte) error {
	logger.Trace().Hex("data", []byte{c}).Msg("write")
	if err := d.bus.Write(c, true, d.delay); err != nil {
		return err
	}
	d.delay.Sleep(commandDelay)
	return nil
}

// WriteChar writes r truncated to a single byte. Keep to the character set
// of the display ROM; codes 0x20..0x7d mostly match ASCII.
func (d *LCD) WriteChar(r rune) error {
	return d.WriteByte(byte(r))
}

// Write writes p one character at a time.
func (d *LCD) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if err = d.WriteByte(c); err != nil {
			return
		}
		n++
	}
	return
}

// WriteString writes the bytes of s, see Write.
func (d *LCD) WriteString(s string) (n int, err error) {
	for i := 0; i < len(s); i++ {
		if err = d.WriteByte(s[i]); err != nil {
			return
		}
		n++
	}
	return
}

var (
	_ io.Writer       = (*LCD)(nil)
	_ io.ByteWriter   = (*LCD)(nil)
	_ io.StringWriter = (*LCD)(nil)
	_ DataBus         = (*EightBitBus)(nil)
	_ DataBus         = (*FourBitBus)(nil)
	_ DataBus         = (*I2CBus)(nil)
	_ DataBus         = BusWidth{}
)
