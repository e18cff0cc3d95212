package main

import (
	"context"
	"fmt"
	"runtime/debug"
)

const versionUsage = `
Usage:	storectl version

Options:
   -h, --help  Show this usage information
`

func version(ctx context.Context, args []string) error {
	flagSet := newFlagSet("storectl version", versionUsage)
	if _, err := parseFlags(flagSet, args); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "storectl %s\n", currentVersion())
	return nil
}

func currentVersion() string {
	version := "devel"
	if info, ok := debug.ReadBuildInfo(); ok {
		switch info.Main.Version {
		case "", "(devel)":
		default:
			version = info.Main.Version
		}
	}
	return version
}
