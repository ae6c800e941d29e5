//go:build !dev
// +build !dev

package logger

import (
	"log"

	"github.com/deanrtaylor1/partsdiscovery/util"
)

func HandleError(err error) {
	log.Println(util.TerminalRed+"Error:", err, util.TerminalReset)
}

func HandleLog(msg string) {
	log.Println(msg)
}
