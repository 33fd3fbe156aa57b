// Package config loads the lcd-test configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Supported buses.
const (
	BusI2C  = "i2c"
	Bus4Bit = "4bit"
	Bus8Bit = "8bit"
)

// Config is the lcd-test configuration.
type Config struct {
	Bus  string `toml:"bus" validate:"required,oneof=i2c 4bit 8bit"`
	I2C  I2C    `toml:"i2c"`
	Pins Pins   `toml:"pins"`
	Demo Demo   `toml:"demo"`
}

// I2C configures a PCF8574 backpack.
type I2C struct {
	Device    int   `toml:"device" validate:"gte=-1"`
	Addr      uint8 `toml:"addr" validate:"gte=3,lte=119"`
	Backlight bool  `toml:"backlight"`
}

// Pins configures a parallel bus by GPIO pin name.
type Pins struct {
	RS   string   `toml:"rs"`
	EN   string   `toml:"en"`
	Data []string `toml:"data" validate:"dive,required"`
}

// Demo is what lcd-test shows.
type Demo struct {
	Lines  []string `toml:"lines" validate:"max=2,dive,max=40"`
	Scroll int      `toml:"scroll" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Bus: BusI2C,
		I2C: I2C{
			Device:    -1,
			Addr:      0x27,
			Backlight: true,
		},
		Pins: Pins{
			RS:   "GPIO25",
			EN:   "GPIO24",
			Data: []string{"GPIO23", "GPIO17", "GPIO18", "GPIO22"},
		},
		Demo: Demo{
			Lines: []string{"Hello, world!", "HD44780 1602"},
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validatePins, Config{})
	return v
}

// validatePins checks the parallel bus pins against the selected bus width.
func validatePins(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)

	var want int
	switch c.Bus {
	case Bus4Bit:
		want = 4
	case Bus8Bit:
		want = 8
	default:
		return
	}
	if c.Pins.RS == "" {
		sl.ReportError(c.Pins.RS, "Pins.RS", "RS", "required", "")
	}
	if c.Pins.EN == "" {
		sl.ReportError(c.Pins.EN, "Pins.EN", "EN", "required", "")
	}
	if len(c.Pins.Data) != want {
		sl.ReportError(c.Pins.Data, "Pins.Data", "Data", "len", fmt.Sprint(want))
	}
}

// Validate the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// Parse decodes TOML on top of the defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(b)
}
