package main

import (
	"context"
)

const unknownCommand = `storectl %s: unknown command
For a list of commands available, run 'storectl help'.`

func unknown(ctx context.Context, cmd string) error {
	return usageError(unknownCommand, cmd)
}
