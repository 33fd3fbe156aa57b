package lcd1602

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// PCF8574 backpack bits.
const (
	pcfRS        = 0x01
	pcfRW        = 0x02
	pcfEnable    = 0x04
	pcfBacklight = 0x08
)

// I2CBus drives the display through a PCF8574 port expander in 4-bit mode.
// Every payload byte carries one nibble in its upper half and the control
// lines in its lower half.
type I2CBus struct {
	dev       i2c.Dev
	backlight bool
}

// NewI2CBus takes ownership of bus for the device at addr, with the
// backlight switched on.
func NewI2CBus(bus i2c.Bus, addr uint16) (*I2CBus, error) {
	if bus == nil {
		return nil, ErrNoBus
	}
	if addr > 0x7f {
		return nil, ErrAddress
	}
	return &I2CBus{
		dev:       i2c.Dev{Bus: bus, Addr: addr},
		backlight: true,
	}, nil
}

func (b *I2CBus) String() string {
	return fmt.Sprintf("I²C bus %s addr %#02x", b.dev.Bus, b.dev.Addr)
}

// SetBacklight changes the backlight bit sent with the following payloads.
func (b *I2CBus) SetBacklight(on bool) {
	b.backlight = on
}

// Backlight reports the backlight bit.
func (b *I2CBus) Backlight() bool {
	return b.backlight
}

// Write implements DataBus.
func (b *I2CBus) Write(v byte, data bool, delay Delay) error {
	var ctl byte
	if data {
		ctl |= pcfRS
	}
	if b.backlight {
		ctl |= pcfBacklight
	}
	if err := b.writeNibble(v&0xf0|ctl, delay); err != nil {
		return err
	}
	return b.writeNibble(v<<4|ctl, delay)
}

func (b *I2CBus) writeNibble(payload byte, delay Delay) error {
	if err := b.dev.Tx([]byte{payload | pcfEnable}, nil); err != nil {
		return busError("i2c enable high", err)
	}
	delay.Sleep(enablePulseWidth)
	if err := b.dev.Tx([]byte{payload &^ pcfEnable}, nil); err != nil {
		return busError("i2c enable low", err)
	}
	return nil
}
