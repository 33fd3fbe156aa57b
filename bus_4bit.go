package lcd1602

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// FourBitPins are the pins of a 4-bit parallel bus, wired to D4..D7 of the
// display.
type FourBitPins struct {
	RS gpio.PinOut // Register select
	EN gpio.PinOut // Enable
	D4 gpio.PinOut
	D5 gpio.PinOut
	D6 gpio.PinOut
	D7 gpio.PinOut
}

// FourBitBus sends every byte as two nibbles, upper nibble first.
type FourBitBus struct {
	rs   gpio.PinOut
	en   gpio.PinOut
	data [4]gpio.PinOut
}

// NewFourBitBus takes ownership of pins.
func NewFourBitBus(pins FourBitPins) (*FourBitBus, error) {
	b := &FourBitBus{
		rs:   pins.RS,
		en:   pins.EN,
		data: [4]gpio.PinOut{pins.D4, pins.D5, pins.D6, pins.D7},
	}
	if err := checkPins(b.rs, b.en, b.data[:]); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *FourBitBus) String() string {
	return fmt.Sprintf("4-bit parallel bus RS=%s EN=%s D4..D7=%s..%s", b.rs, b.en, b.data[0], b.data[3])
}

// Write implements DataBus. RS does not change between the two nibbles.
func (b *FourBitBus) Write(v byte, data bool, delay Delay) error {
	if err := b.rs.Out(gpio.Level(data)); err != nil {
		return busError("register select", err)
	}
	if err := b.writeNibble(v >> 4); err != nil {
		return err
	}
	if err := pulse(b.en, delay); err != nil {
		return err
	}
	if err := b.writeNibble(v & 0x0f); err != nil {
		return err
	}
	if err := pulse(b.en, delay); err != nil {
		return err
	}
	if data {
		if err := b.rs.Out(gpio.Low); err != nil {
			return busError("register select", err)
		}
	}
	return nil
}

func (b *FourBitBus) writeNibble(n byte) error {
	for i, p := range b.data {
		if err := p.Out(gpio.Level(n&(1<<i) != 0)); err != nil {
			return busError(fmt.Sprintf("D%d", i+4), err)
		}
	}
	return nil
}
