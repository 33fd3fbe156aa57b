package lcd1602

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// EightBitPins are the pins of an 8-bit parallel bus.
type EightBitPins struct {
	RS gpio.PinOut // Register select
	EN gpio.PinOut // Enable
	D0 gpio.PinOut
	D1 gpio.PinOut
	D2 gpio.PinOut
	D3 gpio.PinOut
	D4 gpio.PinOut
	D5 gpio.PinOut
	D6 gpio.PinOut
	D7 gpio.PinOut
}

// EightBitBus presents a full byte on D0..D7 with one enable pulse.
type EightBitBus struct {
	rs   gpio.PinOut
	en   gpio.PinOut
	data [8]gpio.PinOut
}

// NewEightBitBus takes ownership of pins.
func NewEightBitBus(pins EightBitPins) (*EightBitBus, error) {
	b := &EightBitBus{
		rs:   pins.RS,
		en:   pins.EN,
		data: [8]gpio.PinOut{pins.D0, pins.D1, pins.D2, pins.D3, pins.D4, pins.D5, pins.D6, pins.D7},
	}
	if err := checkPins(b.rs, b.en, b.data[:]); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *EightBitBus) String() string {
	return fmt.Sprintf("8-bit parallel bus RS=%s EN=%s D0..D7=%s..%s", b.rs, b.en, b.data[0], b.data[7])
}

// Write implements DataBus.
func (b *EightBitBus) Write(v byte, data bool, delay Delay) error {
	if err := b.rs.Out(gpio.Level(data)); err != nil {
		return busError("register select", err)
	}
	for i, p := range b.data {
		if err := p.Out(gpio.Level(v&(1<<i) != 0)); err != nil {
			return busError(fmt.Sprintf("D%d", i), err)
		}
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
