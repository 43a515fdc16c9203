package lcd

import (
	"periph.io/x/conn/v3/gpio"
	"time"
)

type Line byte

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

const (
	registerSelectionPin = "GPIO4"
	clockEdgePin         = "GPIO17"
	data4Pin             = "GPIO25"
	data5Pin             = "GPIO22"
	data6Pin             = "GPIO23"
	data7Pin             = "GPIO24"

	Line1 Line = 0x80
	Line2 Line = 0xC0

	lineWidth   = 16
	character   = gpio.High
	command     = gpio.Low
	signalPulse = 500000 * time.Nanosecond
	signalDelay = 500000 * time.Nanosecond
)

var (
	registerSelection gpio.PinIO
	clockEdge         gpio.PinIO
	dataPins          [4]gpio.PinIO
)

// Print writes both lines of the display in one go.
func Print(line1, line2 string) {
	PrintLine(Line1, line1)
	PrintLine(Line2, line2)
}

// Reset clears the whole display.
func Reset() {
	Clear(Line1)
	Clear(Line2)
}

func Clear(l Line) {
	PrintLine(l, "")
}
