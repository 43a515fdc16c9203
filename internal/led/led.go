package led

const (
	brightness = 90
	ledCounts  = 24
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// LedController drives the ring around the gun barrel. Effects queue on the
// interruptor so that a long running animation yields to whatever wants the
// ring next.
type LedController struct {
	ws          wsEngine
	interruptor Queue
}

func (l *LedController) setColor(color uint32) error {
	leds := l.ws.Leds(0)
	for i := range leds {
		leds[i] = color
	}
	return l.ws.Render()
}

func (l *LedController) clear() error {
	return l.setColor(0)
}

// Stop interrupts any running animation and blanks the ring.
func (l *LedController) Stop() {
	done := l.interruptor.Queue()
	defer done()
	l.clear()
}

func (l *LedController) Close() {
	l.Stop()
	l.ws.Fini()
}

// Get the same color, but with a lower or equal brightness, on a scale from 0-100, where 100 is the same as the input.
func withBrightness(color, light uint32) uint32 {
	if light >= 100 {
		return color
	}
	if light == 0 {
		return 0
	}

	r, g, b := (color>>16)&0xff, (color>>8)&0xff, color&0xff

	red := r * light / 100
	green := g * light / 100
	blue := b * light / 100

	return (red << 16) | (green << 8) | blue
}

// getRGB walks a 384 step color wheel, fading red to green to blue and back.
func getRGB(step int) uint32 {
	s := uint32(step) % 384
	phase := s / 128
	ramp := (s % 128) * 2

	switch phase {
	case 0:
		return (254-ramp)<<16 | ramp<<8
	case 1:
		return (254-ramp)<<8 | ramp
	default:
		return ramp<<16 | (254 - ramp)
	}
}
