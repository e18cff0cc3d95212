package main

import (
	"context"
	"fmt"
	"strings"
)

const helpUsage = `
Usage:	storectl help [command]

   Without arguments, prints the program usage. With a command name, prints
   that command's usage.

Commands:
   GET      Fetch the products collection, a product, or a product field
   POST     Create a product
   DELETE   Delete a product
   config   Print the effective configuration
   help     Show this usage information
   version  Print the storectl version
`

func help(ctx context.Context, args []string) error {
	flagSet := newFlagSet("storectl help", helpUsage)

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Fprintln(stdout, strings.TrimSpace(helpUsage))
		return nil
	}

	var usage string
	switch strings.ToUpper(args[0]) {
	case "GET":
		usage = getUsage
	case "POST":
		usage = postUsage
	case "DELETE":
		usage = deleteUsage
	case "CONFIG":
		usage = configUsage
	case "HELP":
		usage = helpUsage
	case "VERSION":
		usage = versionUsage
	default:
		return usageError("storectl help %s: unknown command", args[0])
	}
	fmt.Fprintln(stdout, strings.TrimSpace(usage))
	return nil
}
