package main

import (
	"fmt"
	"os"

	"github.com/callebjorkell/speedgun/internal/button"
	"github.com/callebjorkell/speedgun/internal/mode"
	"gopkg.in/yaml.v3"
)

const (
	defaultPollInterval = 10 // milliseconds
	defaultArmTimeout   = 2  // seconds
)

type ButtonConfig struct {
	Pin   string `yaml:"pin"`
	Mode  string `yaml:"mode"`
	Color uint32 `yaml:"color"`

	mode mode.Mode
}

type Config struct {
	PollInterval int    `yaml:"pollInterval"`
	InitialUnit  string `yaml:"initialMode"`
	Trap         struct {
		EntryPin   string  `yaml:"entryPin"`
		ExitPin    string  `yaml:"exitPin"`
		Spacing    float64 `yaml:"spacing"`
		ArmTimeout int     `yaml:"armTimeout"`
	} `yaml:"trap"`
	Buttons []ButtonConfig `yaml:"buttons"`

	initialMode mode.Mode
}

func (c Config) InitialMode() mode.Mode {
	return c.initialMode
}

func (c Config) Bindings() []button.Binding {
	bindings := make([]button.Binding, 0, len(c.Buttons))
	for _, b := range c.Buttons {
		bindings = append(bindings, button.Binding{Pin: b.Pin, Mode: b.mode})
	}
	return bindings
}

func (c Config) ColorMap() map[mode.Mode]uint32 {
	colors := make(map[mode.Mode]uint32)
	for _, b := range c.Buttons {
		colors[b.mode] = b.Color
	}
	return colors
}

func getConfig() (*Config, error) {
	content, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Trap.EntryPin == "" {
		return nil, fmt.Errorf("trap entry pin is missing")
	}
	if c.Trap.ExitPin == "" {
		return nil, fmt.Errorf("trap exit pin is missing")
	}
	if c.Trap.EntryPin == c.Trap.ExitPin {
		return nil, fmt.Errorf("trap entry and exit pins must differ")
	}
	if c.Trap.Spacing <= 0 {
		return nil, fmt.Errorf("trap gate spacing must be specified")
	}
	if c.Trap.ArmTimeout <= 0 {
		c.Trap.ArmTimeout = defaultArmTimeout
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}

	if len(c.Buttons) == 0 {
		return nil, fmt.Errorf("at least one mode button must be configured")
	}
	for i := range c.Buttons {
		b := &c.Buttons[i]
		if b.Pin == "" {
			return nil, fmt.Errorf("pin must be specified for button %d", i)
		}
		m, err := mode.Parse(b.Mode)
		if err != nil {
			return nil, fmt.Errorf("button %d: %w", i, err)
		}
		b.mode = m
		if b.Color == 0 {
			return nil, fmt.Errorf("color must be specified for button %d", i)
		}
	}

	if c.InitialUnit == "" {
		c.InitialUnit = c.Buttons[0].Mode
	}
	c.initialMode, err = mode.Parse(c.InitialUnit)
	if err != nil {
		return nil, fmt.Errorf("initial mode: %w", err)
	}

	bound := false
	for _, b := range c.Buttons {
		if b.mode == c.initialMode {
			bound = true
			break
		}
	}
	if !bound {
		return nil, fmt.Errorf("initial mode %s is not bound to any button", c.InitialUnit)
	}

	return c, nil
}
