//go:build pi

package button

import (
	"fmt"

	"github.com/callebjorkell/speedgun/internal/mode"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// InitButtons resolves the configured pins and sets up one mode button per
// binding. The buttons are expected to pull the line low when pressed.
func InitButtons(state *mode.State, bindings []Binding) ([]*ModeButton, error) {
	buttons := make([]*ModeButton, 0, len(bindings))
	for _, binding := range bindings {
		log.Infof("Initializing mode button on %s for %v", binding.Pin, binding.Mode)
		pin := gpioreg.ByName(binding.Pin)
		if pin == nil {
			return nil, fmt.Errorf("no such pin: %s", binding.Pin)
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("unable to configure %s: %w", binding.Pin, err)
		}
		buttons = append(buttons, New(pin, binding.Mode, state))
	}
	return buttons, nil
}
