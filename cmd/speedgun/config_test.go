package main

import (
	"testing"

	"github.com/callebjorkell/speedgun/internal/mode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullConfig = `
pollInterval: 5
initialMode: mph
trap:
  entryPin: GPIO5
  exitPin: GPIO6
  spacing: 0.5
  armTimeout: 3
buttons:
  - pin: GPIO20
    mode: kmh
    color: 0x00ff00
  - pin: GPIO21
    mode: mph
    color: 0x0000ff
`

func TestParseConfig(t *testing.T) {
	c, err := parseConfig([]byte(fullConfig))
	require.NoError(t, err)

	assert.Equal(t, 5, c.PollInterval)
	assert.Equal(t, mode.MilesPerHour, c.InitialMode())
	assert.Equal(t, "GPIO5", c.Trap.EntryPin)
	assert.Equal(t, "GPIO6", c.Trap.ExitPin)
	assert.Equal(t, 0.5, c.Trap.Spacing)
	assert.Equal(t, 3, c.Trap.ArmTimeout)

	bindings := c.Bindings()
	require.Len(t, bindings, 2)
	assert.Equal(t, "GPIO20", bindings[0].Pin)
	assert.Equal(t, mode.KilometersPerHour, bindings[0].Mode)
	assert.Equal(t, "GPIO21", bindings[1].Pin)
	assert.Equal(t, mode.MilesPerHour, bindings[1].Mode)

	colors := c.ColorMap()
	assert.Equal(t, uint32(0x00ff00), colors[mode.KilometersPerHour])
	assert.Equal(t, uint32(0x0000ff), colors[mode.MilesPerHour])
}

func TestParseConfigDefaults(t *testing.T) {
	c, err := parseConfig([]byte(`
trap:
  entryPin: GPIO5
  exitPin: GPIO6
  spacing: 1.0
buttons:
  - pin: GPIO20
    mode: kmh
    color: 0x00ff00
`))
	require.NoError(t, err)

	assert.Equal(t, defaultPollInterval, c.PollInterval)
	assert.Equal(t, defaultArmTimeout, c.Trap.ArmTimeout)
	assert.Equal(t, mode.KilometersPerHour, c.InitialMode())
}

func TestInitialModeDefaultsToFirstButton(t *testing.T) {
	c, err := parseConfig([]byte(`
trap:
  entryPin: GPIO5
  exitPin: GPIO6
  spacing: 1.0
buttons:
  - pin: GPIO21
    mode: mph
    color: 0x0000ff
  - pin: GPIO20
    mode: kmh
    color: 0x00ff00
`))
	require.NoError(t, err)
	assert.Equal(t, mode.MilesPerHour, c.InitialMode())
}

func TestParseConfigValidation(t *testing.T) {
	tt := []struct {
		name    string
		content string
	}{
		{
			"missing entry pin",
			`
trap:
  exitPin: GPIO6
  spacing: 1.0
buttons:
  - pin: GPIO20
    mode: kmh
    color: 0x00ff00
`,
		},
		{
			"same pin for both gates",
			`
trap:
  entryPin: GPIO5
  exitPin: GPIO5
  spacing: 1.0
buttons:
  - pin: GPIO20
    mode: kmh
    color: 0x00ff00
`,
		},
		{
			"missing spacing",
			`
trap:
  entryPin: GPIO5
  exitPin: GPIO6
buttons:
  - pin: GPIO20
    mode: kmh
    color: 0x00ff00
`,
		},
		{
			"no buttons",
			`
trap:
  entryPin: GPIO5
  exitPin: GPIO6
  spacing: 1.0
`,
		},
		{
			"unknown button mode",
			`
trap:
  entryPin: GPIO5
  exitPin: GPIO6
  spacing: 1.0
buttons:
  - pin: GPIO20
    mode: parsecs
    color: 0x00ff00
`,
		},
		{
			"missing button color",
			`
trap:
  entryPin: GPIO5
  exitPin: GPIO6
  spacing: 1.0
buttons:
  - pin: GPIO20
    mode: kmh
`,
		},
		{
			"initial mode without a button",
			`
initialMode: mps
trap:
  entryPin: GPIO5
  exitPin: GPIO6
  spacing: 1.0
buttons:
  - pin: GPIO20
    mode: kmh
    color: 0x00ff00
`,
		},
		{
			"unknown initial mode",
			`
initialMode: parsecs
trap:
  entryPin: GPIO5
  exitPin: GPIO6
  spacing: 1.0
buttons:
  - pin: GPIO20
    mode: kmh
    color: 0x00ff00
`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tc.content))
			assert.Error(t, err)
		})
	}
}

func TestFormatReading(t *testing.T) {
	assert.Equal(t, "   42.3 km/h", formatReading(42.3, mode.KilometersPerHour))
	assert.Equal(t, "    9.9 m/s", formatReading(9.94, mode.MetersPerSecond))
}
