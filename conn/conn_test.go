package conn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestPins(t *testing.T) {
	for _, name := range []string{"CONN_A", "CONN_B"} {
		require.NoError(t, gpioreg.Register(&gpiotest.Pin{N: name, Num: -1}))
		t.Cleanup(func() { _ = gpioreg.Unregister(name) })
	}

	pins, err := Pins("CONN_B", "CONN_A")
	require.NoError(t, err)
	require.Len(t, pins, 2)
	assert.Equal(t, "CONN_B", pins[0].Name())
	assert.Equal(t, "CONN_A", pins[1].Name())

	_, err = Pins("CONN_A", "CONN_MISSING")
	assert.EqualError(t, err, `conn: unknown GPIO pin "CONN_MISSING"`)
}

func TestOpenI2C(t *testing.T) {
	playback := &i2ctest.Playback{
		Ops: []i2ctest.IO{{Addr: 0x27, W: []byte{0x08}}},
	}
	require.NoError(t, i2creg.Register("conn-test", nil, 41, func() (i2c.BusCloser, error) {
		return playback, nil
	}))
	t.Cleanup(func() { _ = i2creg.Unregister("conn-test") })

	c, err := OpenI2C(41)
	require.NoError(t, err)
	assert.Contains(t, c.String(), "I²C bus")
	require.NoError(t, c.Tx(0x27, []byte{0x08}, nil))
	require.NoError(t, c.SetSpeed(0))
	require.NoError(t, c.Close(), "all expected transfers were done")
}

func TestOpenI2CUnknown(t *testing.T) {
	_, err := OpenI2C(4242)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `conn: open I²C bus "4242"`)
}

func TestOpenI2COpenerError(t *testing.T) {
	errBusy := errors.New("bus busy")
	require.NoError(t, i2creg.Register("conn-busy", nil, 43, func() (i2c.BusCloser, error) {
		return nil, errBusy
	}))
	t.Cleanup(func() { _ = i2creg.Unregister("conn-busy") })

	_, err := OpenI2C(43)
	assert.ErrorIs(t, err, errBusy)
}
