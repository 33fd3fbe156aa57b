package lcd1602

import (
	"fmt"

	"github.com/BeatGlow/lcd1602/conn"
)

// I2CConfig describes the I²C backpack configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address of the port expander.
	Addr uint8

	// Backlight state after initialization.
	Backlight bool
}

// DefaultI2CConfig matches the common PCF8574 backpack.
var DefaultI2CConfig = I2CConfig{
	Device:    -1,
	Addr:      0x27,
	Backlight: true,
}

// ParallelConfig describes a parallel bus by GPIO pin names.
type ParallelConfig struct {
	// RS is the register select pin.
	RS string

	// EN is the enable pin.
	EN string

	// Data pins, either D4..D7 or D0..D7.
	Data []string
}

// OpenI2C opens the I²C bus and initializes the display behind it. Close
// releases the bus.
func OpenI2C(config *I2CConfig, delay Delay) (*LCD, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.OpenI2C(config.Device)
	if err != nil {
		return nil, err
	}

	d, err := NewI2C(c, uint16(config.Addr), delay)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	d.closer = c

	if !config.Backlight {
		if err = d.SetBacklight(false); err != nil {
			_ = d.Close()
			return nil, err
		}
	}
	return d, nil
}

// OpenParallel looks up the configured pins and initializes the display on a
// 4-bit or 8-bit bus, depending on the number of data pins.
func OpenParallel(config *ParallelConfig, delay Delay) (*LCD, error) {
	if config == nil {
		return nil, ErrNoBus
	}
	if config.RS == "" {
		return nil, ErrRSPin
	}
	if config.EN == "" {
		return nil, ErrENPin
	}
	if n := len(config.Data); n != 4 && n != 8 {
		return nil, fmt.Errorf("lcd1602: need 4 or 8 data pins, got %d: %w", n, ErrDataPins)
	}

	pins, err := conn.Pins(append([]string{config.RS, config.EN}, config.Data...)...)
	if err != nil {
		return nil, fmt.Errorf("lcd1602: %w", err)
	}
	rs, en, data := pins[0], pins[1], pins[2:]

	var width BusWidth
	if len(data) == 4 {
		width, err = FourBitWidth(FourBitPins{
			RS: rs, EN: en,
			D4: data[0], D5: data[1], D6: data[2], D7: data[3],
		})
	} else {
		width, err = EightBitWidth(EightBitPins{
			RS: rs, EN: en,
			D0: data[0], D1: data[1], D2: data[2], D3: data[3],
			D4: data[4], D5: data[5], D6: data[6], D7: data[7],
		})
	}
	if err != nil {
		return nil, err
	}
	return NewParallel(width, delay)
}
