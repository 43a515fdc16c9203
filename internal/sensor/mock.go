//go:build !pi

package sensor

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// mockGate fires an edge on a fixed interval, so something appears to pass
// the trap every few seconds and the rest of the application can be exercised
// off the device.
type mockGate struct {
	interval time.Duration
	next     time.Time
}

func (g *mockGate) WaitForEdge(timeout time.Duration) bool {
	if g.next.IsZero() {
		g.next = time.Now().Add(g.interval)
	}
	wait := time.Until(g.next)
	if wait > timeout {
		time.Sleep(timeout)
		return false
	}
	if wait > 0 {
		time.Sleep(wait)
	}
	g.next = time.Now().Add(g.interval)
	return true
}

func InitTrap(entryPin, exitPin string, spacing float64, armTimeout time.Duration) (*Trap, error) {
	log.Infof("sensor: mock trap on %s/%s", entryPin, exitPin)
	entry := &mockGate{interval: 5 * time.Second}
	exit := &mockGate{interval: 80 * time.Millisecond}
	return NewTrap(entry, exit, spacing, armTimeout), nil
}
