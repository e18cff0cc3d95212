package main

// Notes on program structure
// --------------------------
//
// storectl uses verbs to invoke specific functionalities of the program.
// Each verb is implemented by a function named after the verb, in a file of
// the same name (e.g. the GET verb is implemented by the get function in
// get.go).
//
// The usage message for each command is declared by a constant starting with
// the command name and followed by the suffix "Usage". For example, the usage
// message for the GET verb is declared by the constant getUsage.
//
// The usage message contains a "Usage:	storectl <command>" section presenting
// the structure of the command. Note the tabulation separating "Usage:" and
// "storectl".

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/storeops/storectl/internal/api"
	"github.com/storeops/storectl/internal/print/jsonprint"
	"github.com/storeops/storectl/internal/print/textprint"
	"github.com/storeops/storectl/internal/print/yamlprint"
	"golang.org/x/exp/slices"
)

const rootUsage = `storectl - products catalog client

   storectl translates terminal arguments into calls against a remote
   products catalog and prints the reply, or a single field of it.

Example:

   $ storectl GET products/15 title
   Mens Casual Slim Fit

   $ storectl POST products "Wool Scarf" 24.90 "accessories"
   {
     "id": 21,
     ...
   }

For a list of commands available, run 'storectl help'.`

// The output streams are variables so that tests can run the program
// in-process and capture what it prints.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// productsPath is the one resource collection the program knows about.
const productsPath = "products"

// command is one parsed invocation: the uppercased verb, the resource path,
// and the free-form arguments that follow. It is constructed once per run
// and never mutated.
type command struct {
	verb string
	path string
	args []string
}

// parseCommand splits raw arguments into a command. It reports false when
// fewer than two tokens are present; verb legality and path shape are the
// dispatcher's business.
func parseCommand(args []string) (command, bool) {
	if len(args) < 2 {
		return command{}, false
	}
	return command{
		verb: strings.ToUpper(args[0]),
		path: args[1],
		args: args[2:],
	}, true
}

// root is the storectl entrypoint.
func root(args ...string) int {
	flagSet := newFlagSet("storectl", rootUsage)
	if err := flagSet.Parse(args); err != nil {
		// The flag set already printed its usage message.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if args = flagSet.Args(); len(args) == 0 {
		fmt.Fprintln(stdout, rootUsage)
		return 0
	}

	ctx := context.Background()

	var err error
	switch verb := strings.ToUpper(args[0]); verb {
	case "GET", "POST", "DELETE":
		cmd, ok := parseCommand(args)
		if !ok {
			// A verb without a resource path is not an error, only a call
			// for help.
			fmt.Fprintln(stdout, rootUsage)
			return 0
		}
		switch verb {
		case "GET":
			err = get(ctx, cmd)
		case "POST":
			err = post(ctx, cmd)
		case "DELETE":
			err = deleteProduct(ctx, cmd)
		}
	case "HELP":
		err = help(ctx, args[1:])
	case "VERSION":
		err = version(ctx, args[1:])
	case "CONFIG":
		err = configure(ctx, args[1:])
	default:
		err = unknown(ctx, args[0])
	}

	switch e := err.(type) {
	case nil:
		return 0
	case exitCode:
		return int(e)
	case usage:
		fmt.Fprintf(stderr, "%s\n", e)
		return 2
	default:
		fmt.Fprintf(stderr, "ERR: storectl %s: %s\n", args[0], err)
		return 1
	}
}

// exitCode is an error type returned from command functions to indicate the
// exit code that should be returned by the program.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit: %d", e)
}

// usage is an error type returned from command functions to indicate a usage
// error.
//
// Usage errors cause the program to exit with status code 2.
type usage string

func usageError(msg string, args ...any) error {
	return usage(fmt.Sprintf(msg, args...))
}

func (e usage) Error() string {
	return string(e)
}

// invalidRoute reports a path shape the verb does not support; no request is
// issued for these.
func invalidRoute(verb, path string) error {
	return usageError("storectl %s does not support the route %q%s", verb, path, seeCmd(verb))
}

func seeCmd(cmd string) string {
	return fmt.Sprintf("\n\nSee 'storectl help %s' for the arguments the command accepts.", cmd)
}

func setEnum[T ~string](enum *T, typ string, value string, options ...string) error {
	for _, option := range options {
		if option == value {
			*enum = T(option)
			return nil
		}
	}
	return fmt.Errorf("unsupported %s: %q (not one of %s)", typ, value, strings.Join(options, ", "))
}

type outputFormat string

func (o outputFormat) String() string {
	return string(o)
}

func (o *outputFormat) Set(value string) error {
	return setEnum(o, "output format", value, "text", "json", "yaml")
}

func newFlagSet(cmd, usage string) *flag.FlagSet {
	usage = strings.TrimSpace(usage)
	flagSet := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() { fmt.Fprintln(stdout, usage) }
	customVar(flagSet, &configPath, "c", "config")
	return flagSet
}

// parseFlags is a greedy parser which consumes all options known to f and
// returns the remaining positional arguments, allowing options and
// positionals to interleave.
func parseFlags(f *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := f.Parse(args); err != nil {
			// The flag set already printed its usage message.
			if errors.Is(err, flag.ErrHelp) {
				return nil, exitCode(0)
			}
			return nil, usageError("%s", err)
		}
		if args = f.Args(); len(args) == 0 {
			return positional, nil
		}
		i := slices.IndexFunc(args, func(s string) bool {
			return len(s) > 1 && strings.HasPrefix(s, "-")
		})
		if i <= 0 {
			return append(positional, args...), nil
		}
		positional = append(positional, args[:i]...)
		args = args[i:]
	}
}

func boolVar(f *flag.FlagSet, dst *bool, name string, alias ...string) {
	f.BoolVar(dst, name, *dst, "")
	for _, name := range alias {
		f.BoolVar(dst, name, *dst, "")
	}
}

func customVar(f *flag.FlagSet, dst flag.Value, name string, alias ...string) {
	f.Var(dst, name, "")
	for _, name := range alias {
		f.Var(dst, name, "")
	}
}

// printResult renders a call result in the requested output format. Status
// messages print as plain lines in every format.
func printResult(output outputFormat, result api.Result) error {
	if message, ok := result.Message(); ok {
		_, err := fmt.Fprintln(stdout, message)
		return err
	}
	value, _ := result.Value()
	return printValue(output, value)
}

func printValue(output outputFormat, value any) error {
	switch output {
	case "yaml":
		return yamlprint.Encode(stdout, value)
	case "text":
		return printTable(value)
	default:
		return jsonprint.Encode(stdout, value)
	}
}

// printTable renders a product object or collection as a table, falling back
// to JSON for values with no product shape.
func printTable(value any) error {
	rows, ok := productRows(value)
	if !ok {
		return jsonprint.Encode(stdout, value)
	}
	tw := textprint.NewTableWriter(stdout)
	tw.Write(rows...)
	return tw.Flush()
}

func productRows(value any) ([]textprint.Row, bool) {
	switch v := value.(type) {
	case map[string]any:
		return []textprint.Row{textprint.RowOf(v)}, true
	case []any:
		rows := make([]textprint.Row, 0, len(v))
		for _, item := range v {
			object, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			rows = append(rows, textprint.RowOf(object))
		}
		return rows, true
	}
	return nil, false
}
