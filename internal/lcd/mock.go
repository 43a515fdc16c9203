//go:build !pi

package lcd

import (
	log "github.com/sirupsen/logrus"
)

func InitLCD() {
	log.Infoln("lcd: mock init")
}

func PrintLine(l Line, msg string) {
	log.Infof("lcd %v: %-16s", l, msg)
}
