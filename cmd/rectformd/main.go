// Package main starts the rectform server.
package main

import "flag"

// main is the entrypoint for the rectform server.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose gesture logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
