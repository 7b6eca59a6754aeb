package main

import (
	"log"
	"os"
)

var debugLogging = os.Getenv("GOHOTKEY_DEBUG") != ""

func logError(format string, args ...any) {
	log.Printf("ERROR: "+format, args...)
}

func logDebug(format string, args ...any) {
	if debugLogging {
		log.Printf(format, args...)
	}
}
