package lcd1602

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrBus          = errors.New("lcd1602: bus write failed")
	ErrNoBus        = errors.New("lcd1602: no bus selected")
	ErrRSPin        = errors.New("lcd1602: register select (RS) GPIO pin is invalid")
	ErrENPin        = errors.New("lcd1602: enable (EN) GPIO pin is invalid")
	ErrDataPins     = errors.New("lcd1602: data GPIO pins are invalid")
	ErrPinReused    = errors.New("lcd1602: GPIO pin is used more than once")
	ErrAddress      = errors.New("lcd1602: I²C address is not a 7-bit address")
	ErrNotSupported = errors.New("lcd1602: not supported by this bus")
)

// BusError is returned when a pin or I²C write fails. The display state is
// unknown afterwards; reset and initialize it again.
type BusError struct {
	// Op is the signal or transfer that failed.
	Op string

	// Err is the error returned by the pin or bus.
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("lcd1602: %s: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// Is reports a match with ErrBus.
func (e *BusError) Is(target error) bool {
	return target == ErrBus
}

func busError(op string, err error) error {
	logger.Debug().Str("op", op).Err(err).Msg("bus write failed")
	return &BusError{Op: op, Err: err}
}
