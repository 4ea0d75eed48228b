package main

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("aoc2025")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
