package button

import (
	"testing"

	"github.com/callebjorkell/speedgun/internal/mode"
	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/gpio"
)

type fakePin struct {
	level gpio.Level
}

func (f *fakePin) Read() gpio.Level {
	return f.level
}

func (f *fakePin) press()   { f.level = gpio.Low }
func (f *fakePin) release() { f.level = gpio.High }

func newFakePin() *fakePin {
	return &fakePin{level: gpio.High}
}

func TestCheckTogglesOncePerPress(t *testing.T) {
	pin := newFakePin()
	state := mode.NewState(mode.KilometersPerHour)
	b := New(pin, mode.MilesPerHour, state)

	pin.press()
	assert.True(t, b.Check())
	assert.False(t, b.Check())
	assert.False(t, b.Check())

	pin.release()
	assert.False(t, b.Check())

	assert.Equal(t, mode.MilesPerHour, state.Current())
}

func TestReleaseRearmsButton(t *testing.T) {
	pin := newFakePin()
	state := mode.NewState(mode.KilometersPerHour)
	b := New(pin, mode.MilesPerHour, state)

	pin.press()
	assert.True(t, b.Check())

	pin.release()
	assert.False(t, b.Check())

	pin.press()
	assert.True(t, b.Check())
}

func TestUnpressedButtonNeverToggles(t *testing.T) {
	pin := newFakePin()
	state := mode.NewState(mode.KilometersPerHour)
	b := New(pin, mode.MilesPerHour, state)

	for i := 0; i < 3; i++ {
		assert.False(t, b.Check())
	}
	assert.Equal(t, mode.KilometersPerHour, state.Current())
}

func TestToggleWritesConfiguredMode(t *testing.T) {
	pin := newFakePin()
	state := mode.NewState(mode.KilometersPerHour)
	b := New(pin, mode.MetersPerSecond, state)

	pin.press()
	b.Check()

	assert.Equal(t, mode.MetersPerSecond, state.Current())
}

func TestLastPolledButtonWins(t *testing.T) {
	state := mode.NewState(mode.MetersPerSecond)
	pinA, pinB := newFakePin(), newFakePin()
	a := New(pinA, mode.KilometersPerHour, state)
	b := New(pinB, mode.MilesPerHour, state)

	// only A pressed this tick
	pinA.press()
	a.Check()
	b.Check()
	assert.Equal(t, mode.KilometersPerHour, state.Current())

	pinA.release()
	a.Check()
	b.Check()

	// both pressed the same tick, B is polled last
	pinA.press()
	pinB.press()
	a.Check()
	b.Check()
	assert.Equal(t, mode.MilesPerHour, state.Current())
}

func TestLockStateIsPerButton(t *testing.T) {
	state := mode.NewState(mode.MetersPerSecond)
	pinA, pinB := newFakePin(), newFakePin()
	a := New(pinA, mode.KilometersPerHour, state)
	b := New(pinB, mode.MilesPerHour, state)

	pinA.press()
	assert.True(t, a.Check())
	assert.True(t, a.locked)
	assert.False(t, b.locked)

	// B is untouched by A holding its lock
	pinB.press()
	assert.True(t, b.Check())
}
