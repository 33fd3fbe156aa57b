// Package conn opens host resources through the periph.io registries.
package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

// I2C is an opened I²C bus.
type I2C struct {
	bus i2c.BusCloser
}

// OpenI2C opens the numbered I²C bus, use a negative device to open the first
// available bus.
func OpenI2C(device int) (*I2C, error) {
	var (
		bus  i2c.BusCloser
		name string
		err  error
	)
	if device >= 0 {
		name = strconv.Itoa(device)
	}
	if bus, err = i2creg.Open(name); err != nil {
		return nil, fmt.Errorf("conn: open I²C bus %q: %w", name, err)
	}
	return &I2C{bus: bus}, nil
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

// Close the bus.
func (c *I2C) Close() error {
	return c.bus.Close()
}

// Tx implements i2c.Bus.
func (c *I2C) Tx(addr uint16, w, r []byte) error {
	return c.bus.Tx(addr, w, r)
}

// SetSpeed implements i2c.Bus.
func (c *I2C) SetSpeed(f physic.Frequency) error {
	return c.bus.SetSpeed(f)
}

var _ i2c.BusCloser = (*I2C)(nil)
