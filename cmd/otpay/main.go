package main

import (
	"os"

	"github.com/ajshieldpay/otpay/internal/cli"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		// Keep command output readable unless asked otherwise.
		log.SetLevel(log.WarnLevel)
		return
	}
	logrusLevel, err := log.ParseLevel(level)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(logrusLevel)
}

func main() {
	cli.Execute()
}
