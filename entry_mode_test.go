package lcd1602

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEntryModeByte(t *testing.T) {
	tests := []struct {
		mode EntryMode
		want byte
	}{
		{EntryMode{Direction: Decrement, Shift: false}, 0b0000_0100},
		{EntryMode{Direction: Decrement, Shift: true}, 0b0000_0101},
		{EntryMode{Direction: Increment, Shift: false}, 0b0000_0110},
		{EntryMode{Direction: Increment, Shift: true}, 0b0000_0111},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Byte())
		})
	}
}

func TestDefaultEntryMode(t *testing.T) {
	assert.Equal(t, byte(0x06), DefaultEntryMode.Byte())
}

func TestEntryModeBits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := EntryMode{
			Direction: rapid.SampledFrom([]CursorMode{Increment, Decrement}).Draw(t, "direction"),
			Shift:     rapid.Bool().Draw(t, "shift"),
		}
		b := m.Byte()
		if b&0b0000_0100 == 0 {
			t.Fatalf("%s: entry mode bit not set", m)
		}
		if (b&0b0000_0010 != 0) != (m.Direction == Increment) {
			t.Fatalf("%s: direction bit mismatch", m)
		}
		if (b&0b0000_0001 != 0) != m.Shift {
			t.Fatalf("%s: shift bit mismatch", m)
		}
		if b&^0b0000_0111 != 0 {
			t.Fatalf("%s: unexpected bits %#08b", m, b)
		}
	})
}
