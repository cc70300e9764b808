// Package main opens the rectform desktop editor.
package main

import (
	"flag"
	"log"
	"os"
)

// main is the entrypoint for the desktop editor.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose gesture logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}
