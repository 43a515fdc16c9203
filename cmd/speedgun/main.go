package main

import (
	"fmt"
	"github.com/callebjorkell/speedgun/internal/button"
	"github.com/callebjorkell/speedgun/internal/lcd"
	"github.com/callebjorkell/speedgun/internal/led"
	"github.com/callebjorkell/speedgun/internal/mode"
	"github.com/callebjorkell/speedgun/internal/sensor"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var (
	app     = kingpin.New("speedgun", "Velocity sensor with mode buttons")
	debug   = app.Flag("debug", "Turn on debug logging.").Bool()
	start   = app.Command("start", "Start the speed gun")
	version = app.Command("version", "Show current version.")
)

var buildTime, buildVersion string

func showVersion() {
	if buildTime != "" && buildVersion != "" {
		fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
	} else {
		fmt.Println("speedgun: dev")
	}
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	switch cmd {
	case start.FullCommand():
		startGun()
	case version.FullCommand():
		showVersion()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

func startGun() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	conf, err := getConfig()
	if err != nil {
		panic(err)
	}

	lcd.InitLCD()
	lcd.Reset()

	ledCtl := led.NewLedController()

	state := mode.NewState(conf.InitialMode())
	buttons, err := button.InitButtons(state, conf.Bindings())
	if err != nil {
		log.Fatal("Unable to set up mode buttons: ", err)
	}

	trap, err := sensor.InitTrap(
		conf.Trap.EntryPin,
		conf.Trap.ExitPin,
		conf.Trap.Spacing,
		time.Duration(conf.Trap.ArmTimeout)*time.Second,
	)
	if err != nil {
		log.Fatal("Unable to set up the speed trap: ", err)
	}
	trap.Start()

	colors := conf.ColorMap()
	initialColor := colors[state.Current()]
	go func() {
		ledCtl.Rainbow()
		ledCtl.Solid(initialColor)
	}()
	lcd.Print("   Speed gun", fmt.Sprintf("mode: %s", state.Current().Unit()))

	go func() {
		t := time.NewTicker(time.Duration(conf.PollInterval) * time.Millisecond)
		defer t.Stop()

		for {
			select {
			case <-t.C:
				for _, b := range buttons {
					if !b.Check() {
						continue
					}
					m := state.Current()
					log.Infof("Mode changed to %v", m)
					lcd.PrintLine(lcd.Line2, fmt.Sprintf("mode: %s", m.Unit()))
					go ledCtl.Solid(colors[m])
				}
			case armed, ok := <-trap.Armed():
				if !ok {
					return
				}
				c := colors[state.Current()]
				if armed {
					ledCtl.Breathe(c)
				} else {
					go ledCtl.Solid(c)
				}
			case r, ok := <-trap.Readings():
				if !ok {
					return
				}
				m := state.Current()
				v := m.FromMetersPerSecond(r.MetersPerSecond)
				log.Infof("Clocked %.2f %s (%.2f m/s over %v)", v, m.Unit(), r.MetersPerSecond, r.Elapsed)
				lcd.Print(formatReading(v, m), fmt.Sprintf("mode: %s", m.Unit()))
				c := colors[m]
				go func() {
					ledCtl.Flash(c)
					ledCtl.Solid(c)
				}()
			}
		}
	}()

	<-signalChan

	trap.Close()
	lcd.Print("  Sleeping...", "")
	ledCtl.Close()

	log.Info("Done...")
}

func formatReading(v float64, m mode.Mode) string {
	return fmt.Sprintf("%7.1f %s", v, m.Unit())
}
