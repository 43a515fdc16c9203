//go:build !pi

package button

import (
	"github.com/callebjorkell/speedgun/internal/mode"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

type mockPin struct{}

func (mockPin) Read() gpio.Level {
	// released; the pull-up keeps the line high
	return gpio.High
}

func InitButtons(state *mode.State, bindings []Binding) ([]*ModeButton, error) {
	buttons := make([]*ModeButton, 0, len(bindings))
	for _, binding := range bindings {
		log.Infof("button: mock %s for %v", binding.Pin, binding.Mode)
		buttons = append(buttons, New(mockPin{}, binding.Mode, state))
	}
	return buttons, nil
}
