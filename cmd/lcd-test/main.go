package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/lcd1602"
	"github.com/BeatGlow/lcd1602/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "TOML configuration file")
	busFlag := flag.String("bus", "", "Bus type: i2c, 4bit or 8bit")
	i2cDeviceFlag := flag.Int("i2c-dev", lcd1602.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(lcd1602.DefaultI2CConfig.Addr), "I²C backpack address")
	backlightFlag := flag.Bool("backlight", true, "Switch the I²C backpack backlight on")
	rsPinFlag := flag.String("rs", "", "Register select GPIO pin")
	enPinFlag := flag.String("en", "", "Enable GPIO pin")
	dataPinsFlag := flag.String("data", "", "Comma separated data GPIO pins, D4..D7 or D0..D7")
	scrollFlag := flag.Int("scroll", 0, "Shift the display this many times")
	verboseFlag := flag.Bool("v", false, "Log bus traffic")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *verboseFlag {
		log = log.Level(zerolog.DebugLevel)
		lcd1602.SetLogger(log)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fatal(err)
		}
	}

	// Flags override the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bus":
			cfg.Bus = *busFlag
		case "i2c-dev":
			cfg.I2C.Device = *i2cDeviceFlag
		case "i2c-addr":
			cfg.I2C.Addr = uint8(*i2cAddrFlag)
		case "backlight":
			cfg.I2C.Backlight = *backlightFlag
		case "rs":
			cfg.Pins.RS = *rsPinFlag
		case "en":
			cfg.Pins.EN = *enPinFlag
		case "data":
			cfg.Pins.Data = strings.Split(*dataPinsFlag, ",")
		case "scroll":
			cfg.Demo.Scroll = *scrollFlag
		}
	})
	if flag.NArg() > 0 {
		cfg.Demo.Lines = flag.Args()
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		lcd *lcd1602.LCD
		err error
	)
	switch cfg.Bus {
	case config.BusI2C:
		lcd, err = lcd1602.OpenI2C(&lcd1602.I2CConfig{
			Device:    cfg.I2C.Device,
			Addr:      cfg.I2C.Addr,
			Backlight: cfg.I2C.Backlight,
		}, nil)
	default:
		lcd, err = lcd1602.OpenParallel(&lcd1602.ParallelConfig{
			RS:   cfg.Pins.RS,
			EN:   cfg.Pins.EN,
			Data: cfg.Pins.Data,
		}, nil)
	}
	if err != nil {
		fatal(err)
	}
	defer lcd.Close()
	log.Info().Stringer("lcd", lcd).Msg("display initialized")

	if err = lcd.SetDisplayMode(lcd1602.DisplayMode{Display: true}); err != nil {
		fatal(err)
	}
	for row, line := range cfg.Demo.Lines {
		if err = lcd.MoveTo(row, 0); err != nil {
			fatal(err)
		}
		if _, err = lcd.WriteString(line); err != nil {
			fatal(err)
		}
		log.Info().Int("row", row).Str("text", line).Msg("wrote line")
	}

	if cfg.Demo.Scroll > 0 {
		ticker := time.NewTicker(300 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; i < cfg.Demo.Scroll; i++ {
			<-ticker.C
			if err = lcd.ShiftDisplay(lcd1602.Left); err != nil {
				fatal(err)
			}
		}
		if err = lcd.Reset(); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
