package sensor

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Measurement is a single speed reading, always in meters per second. Unit
// conversion is the consumer's business.
type Measurement struct {
	MetersPerSecond float64
	Elapsed         time.Duration
}

// Gate is a break-beam sensor that reports when its beam is cut. gpio.PinIO
// satisfies it, and tests can script their own edges.
type Gate interface {
	WaitForEdge(timeout time.Duration) bool
}

// Trap measures the speed of whatever passes between two gates a known
// distance apart. Readings are produced on a buffered channel; a reading that
// would block is dropped rather than stalling the watch loop.
type Trap struct {
	entry      Gate
	exit       Gate
	spacing    float64
	armTimeout time.Duration
	readings   chan Measurement
	armed      chan bool
	ctx        context.Context
	killSwitch func()
}

func NewTrap(entry, exit Gate, spacing float64, armTimeout time.Duration) *Trap {
	ctx, cancel := context.WithCancel(context.Background())
	return &Trap{
		entry:      entry,
		exit:       exit,
		spacing:    spacing,
		armTimeout: armTimeout,
		readings:   make(chan Measurement, 10),
		armed:      make(chan bool, 4),
		ctx:        ctx,
		killSwitch: cancel,
	}
}

func (t *Trap) Readings() <-chan Measurement {
	return t.readings
}

// Armed reports when the entry gate trips (true) and when an armed pass is
// abandoned without a reading (false). A completed pass shows up on Readings
// instead of disarming here.
func (t *Trap) Armed() <-chan bool {
	return t.armed
}

func (t *Trap) Close() error {
	t.killSwitch()
	return nil
}

// Start launches the watch loop. The loop blocks on the entry gate, arms on a
// beam cut, and waits for the exit gate with a timeout so that an object that
// wanders off between the gates does not wedge the trap.
func (t *Trap) Start() {
	go func() {
		log.Infof("Watching for objects over a %.2fm trap", t.spacing)
		for {
			select {
			case <-t.ctx.Done():
				log.Debug("Trap closed. Stopping watch.")
				close(t.readings)
				close(t.armed)
				return
			default:
			}

			if !t.entry.WaitForEdge(time.Second) {
				continue
			}
			armedAt := time.Now()
			log.Debug("Entry gate tripped, waiting for exit gate")
			t.notifyArmed(true)

			if !t.exit.WaitForEdge(t.armTimeout) {
				log.Warn("Object tripped the entry gate but never reached the exit gate")
				t.notifyArmed(false)
				continue
			}
			elapsed := time.Since(armedAt)

			v := speed(t.spacing, elapsed)
			if v == 0 {
				log.Warnf("Discarding implausible reading (elapsed %v)", elapsed)
				t.notifyArmed(false)
				continue
			}

			log.Debugf("Measured %.2f m/s over %v", v, elapsed)
			select {
			case t.readings <- Measurement{MetersPerSecond: v, Elapsed: elapsed}:
			default:
				log.Warn("Reading discarded, consumer is not keeping up")
			}
		}
	}()
}

func (t *Trap) notifyArmed(armed bool) {
	select {
	case t.armed <- armed:
	default:
		log.Warn("Armed event discarded, consumer is not keeping up")
	}
}

func speed(spacing float64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return spacing / elapsed.Seconds()
}
