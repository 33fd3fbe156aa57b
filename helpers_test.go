package lcd1602

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type eventKind uint8

const (
	evPin eventKind = iota
	evSleep
	evWrite
)

type event struct {
	kind  eventKind
	pin   string
	level gpio.Level
	sleep time.Duration
	b     byte
	data  bool
}

// recorder logs pin changes, bus writes and delays in the order they happen.
type recorder struct {
	events []event
	fail   map[string]error
}

func newRecorder() *recorder {
	return &recorder{fail: map[string]error{}}
}

func (r *recorder) Sleep(d time.Duration) {
	r.events = append(r.events, event{kind: evSleep, sleep: d})
}

func (r *recorder) reset() {
	r.events = nil
}

func (r *recorder) pin(name string) *recordingPin {
	return &recordingPin{Pin: &gpiotest.Pin{N: name, Num: -1}, r: r}
}

func (r *recorder) pinEvents(name string) (levels []gpio.Level) {
	for _, e := range r.events {
		if e.kind == evPin && e.pin == name {
			levels = append(levels, e.level)
		}
	}
	return
}

func (r *recorder) sleeps() (out []time.Duration) {
	for _, e := range r.events {
		if e.kind == evSleep {
			out = append(out, e.sleep)
		}
	}
	return
}

type latch struct {
	rs   gpio.Level
	data byte
}

// latches returns the RS and data line levels at every rising EN edge.
func (r *recorder) latches(rs, en string, data ...string) (out []latch) {
	levels := map[string]gpio.Level{}
	for _, e := range r.events {
		if e.kind != evPin {
			continue
		}
		if e.pin == en && e.level == gpio.High && !levels[en] {
			l := latch{rs: levels[rs]}
			for i, name := range data {
				if levels[name] {
					l.data |= 1 << i
				}
			}
			out = append(out, l)
		}
		levels[e.pin] = e.level
	}
	return
}

type recordingPin struct {
	*gpiotest.Pin
	r *recorder
}

func (p *recordingPin) Out(l gpio.Level) error {
	if err := p.r.fail[p.N]; err != nil {
		return err
	}
	p.r.events = append(p.r.events, event{kind: evPin, pin: p.N, level: l})
	return p.Pin.Out(l)
}

func fourBitPins(r *recorder) FourBitPins {
	return FourBitPins{
		RS: r.pin("RS"),
		EN: r.pin("EN"),
		D4: r.pin("D4"),
		D5: r.pin("D5"),
		D6: r.pin("D6"),
		D7: r.pin("D7"),
	}
}

func eightBitPins(r *recorder) EightBitPins {
	return EightBitPins{
		RS: r.pin("RS"),
		EN: r.pin("EN"),
		D0: r.pin("D0"),
		D1: r.pin("D1"),
		D2: r.pin("D2"),
		D3: r.pin("D3"),
		D4: r.pin("D4"),
		D5: r.pin("D5"),
		D6: r.pin("D6"),
		D7: r.pin("D7"),
	}
}

var (
	nibbleLines = []string{"D4", "D5", "D6", "D7"}
	byteLines   = []string{"D0", "D1", "D2", "D3", "D4", "D5", "D6", "D7"}
)

// fakeBus logs whole instruction bytes and fails on write number failAt.
type fakeBus struct {
	r      *recorder
	count  int
	failAt int
	err    error
}

func newFakeBus(r *recorder) *fakeBus {
	return &fakeBus{r: r, failAt: -1}
}

func (b *fakeBus) String() string {
	return "fake bus"
}

func (b *fakeBus) Write(v byte, data bool, delay Delay) error {
	defer func() { b.count++ }()
	if b.count == b.failAt {
		return busError("fake", b.err)
	}
	b.r.events = append(b.r.events, event{kind: evWrite, b: v, data: data})
	return nil
}

type write struct {
	b    byte
	data bool
}

func (r *recorder) writes() (out []write) {
	for _, e := range r.events {
		if e.kind == evWrite {
			out = append(out, write{e.b, e.data})
		}
	}
	return
}

func commands(bs ...byte) []write {
	out := make([]write, len(bs))
	for i, b := range bs {
		out[i] = write{b: b}
	}
	return out
}

// newTestLCD returns an initialized display on a fake bus with an empty log.
func newTestLCD() (*LCD, *fakeBus, *recorder) {
	r := newRecorder()
	bus := newFakeBus(r)
	d, err := newLCD(bus, r, false)
	if err != nil {
		panic(err)
	}
	r.reset()
	return d, bus, r
}
