package lcd1602

import (
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/gpio"
)

// Delay blocks the caller. It is satisfied by clockwork.Clock.
type Delay interface {
	Sleep(time.Duration)
}

// DefaultDelay sleeps on the real clock.
var DefaultDelay Delay = clockwork.NewRealClock()

// DataBus transmits one instruction byte to the controller.
type DataBus interface {
	String() string

	// Write sends b as character data if data is set, as a command
	// otherwise. It returns after the enable pulse was deasserted.
	Write(b byte, data bool, delay Delay) error
}

// BusWidth selects one of the parallel buses.
type BusWidth struct {
	four  *FourBitBus
	eight *EightBitBus
}

// FourBitWidth selects the 4-bit parallel bus.
func FourBitWidth(pins FourBitPins) (BusWidth, error) {
	b, err := NewFourBitBus(pins)
	if err != nil {
		return BusWidth{}, err
	}
	return BusWidth{four: b}, nil
}

// EightBitWidth selects the 8-bit parallel bus.
func EightBitWidth(pins EightBitPins) (BusWidth, error) {
	b, err := NewEightBitBus(pins)
	if err != nil {
		return BusWidth{}, err
	}
	return BusWidth{eight: b}, nil
}

// Bits is the data width, 0 if nothing was selected.
func (w BusWidth) Bits() int {
	switch {
	case w.four != nil:
		return 4
	case w.eight != nil:
		return 8
	default:
		return 0
	}
}

func (w BusWidth) String() string {
	switch {
	case w.four != nil:
		return w.four.String()
	case w.eight != nil:
		return w.eight.String()
	default:
		return "no bus"
	}
}

// Write implements DataBus.
func (w BusWidth) Write(b byte, data bool, delay Delay) error {
	switch {
	case w.four != nil:
		return w.four.Write(b, data, delay)
	case w.eight != nil:
		return w.eight.Write(b, data, delay)
	default:
		return ErrNoBus
	}
}

// pulse latches the data lines.
func pulse(en gpio.PinOut, delay Delay) error {
	if err := en.Out(gpio.High); err != nil {
		return busError("enable high", err)
	}
	delay.Sleep(enablePulseWidth)
	if err := en.Out(gpio.Low); err != nil {
		return busError("enable low", err)
	}
	return nil
}

// checkPins rejects nil pins and pins that appear more than once.
func checkPins(rs, en gpio.PinOut, data []gpio.PinOut) error {
	if isInvalid(rs) {
		return ErrRSPin
	}
	if isInvalid(en) {
		return ErrENPin
	}
	seen := map[gpio.PinOut]bool{rs: true}
	if seen[en] {
		return ErrPinReused
	}
	seen[en] = true
	for _, p := range data {
		if isInvalid(p) {
			return ErrDataPins
		}
		if seen[p] {
			return ErrPinReused
		}
		seen[p] = true
	}
	return nil
}

func isInvalid(p gpio.PinOut) bool {
	return p == nil || p == gpio.INVALID
}
