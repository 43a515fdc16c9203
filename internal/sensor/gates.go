//go:build pi

package sensor

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// InitTrap resolves the two gate pins and builds the trap. The beam sensors
// pull the line low when the beam is cut, so the gates trigger on the falling
// edge.
func InitTrap(entryPin, exitPin string, spacing float64, armTimeout time.Duration) (*Trap, error) {
	log.Infof("Initializing speed trap on %s/%s", entryPin, exitPin)

	entry, err := gatePin(entryPin)
	if err != nil {
		return nil, err
	}
	exit, err := gatePin(exitPin)
	if err != nil {
		return nil, err
	}

	return NewTrap(entry, exit, spacing, armTimeout), nil
}

func gatePin(name string) (gpio.PinIO, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no such pin: %s", name)
	}
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("unable to configure %s: %w", name, err)
	}
	return pin, nil
}
