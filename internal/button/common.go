package button

import (
	"github.com/callebjorkell/speedgun/internal/mode"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// Pin is the one capability a mode button needs from the hardware: reading
// the current level of its input line. gpio.PinIO satisfies it directly, and
// tests can swap in a fake.
type Pin interface {
	Read() gpio.Level
}

// ModeButton toggles the shared mode state to its configured mode when
// pressed. A lock flag makes sure a single sustained press only registers
// once, no matter how many polling ticks it spans.
type ModeButton struct {
	pin    Pin
	mode   mode.Mode
	state  *mode.State
	locked bool
}

func New(pin Pin, m mode.Mode, state *mode.State) *ModeButton {
	return &ModeButton{
		pin:   pin,
		mode:  m,
		state: state,
	}
}

// Pressed reads the pin. The buttons are wired active low with internal
// pull-ups, so a low level means the button is held down.
func (b *ModeButton) Pressed() bool {
	return b.pin.Read() == gpio.Low
}

// Check advances the press state machine one polling tick and reports whether
// a toggle fired on this tick. A press toggles the mode and locks the button;
// the lock is released once the button is seen released again, re-arming it
// for the next press. The release itself never toggles.
func (b *ModeButton) Check() bool {
	if b.locked {
		if !b.Pressed() {
			b.locked = false
		}
		return false
	}

	if b.Pressed() {
		b.locked = true
		b.toggle()
		return true
	}
	return false
}

func (b *ModeButton) toggle() {
	log.Debugf("Toggling mode to %v", b.mode)
	b.state.Set(b.mode)
}

// Binding pairs a pin name with the mode that pin selects.
type Binding struct {
	Pin  string
	Mode mode.Mode
}
