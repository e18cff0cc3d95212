package main

import (
	"log"
	"os"
)

func init() {
	// Diagnostics from the request layer print as bare lines on stderr.
	log.SetFlags(0)
}

func main() {
	os.Exit(root(os.Args[1:]...))
}
