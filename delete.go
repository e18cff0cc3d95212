package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const deleteUsage = `
Usage:	storectl DELETE products/<id> [options]

   The DELETE verb removes a product from the catalog. The id must be an
   integer. The service's reply is restated as-is; whether the deletion is
   durable is up to the service.

Example:

   $ storectl DELETE products/7
   deleted product 7: request completed with status 200

Options:
   -c, --config path    Path to the storectl configuration file (overrides STORECTLCONFIG)
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: text, json, yaml
`

func deleteProduct(ctx context.Context, cmd command) error {
	output := outputFormat("json")

	flagSet := newFlagSet("storectl DELETE", deleteUsage)
	customVar(flagSet, &output, "o", "output")

	if _, err := parseFlags(flagSet, cmd.args); err != nil {
		return err
	}

	id, ok := productID(cmd.path)
	if !ok {
		return usageError("storectl DELETE expects products/<id> with an integer id, got %q%s", cmd.path, seeCmd("DELETE"))
	}

	client, err := apiClient()
	if err != nil {
		return err
	}
	result, err := client.Execute(ctx, http.MethodDelete, cmd.path, nil)
	if err != nil {
		return err
	}

	if message, ok := result.Message(); ok {
		_, err := fmt.Fprintf(stdout, "deleted product %d: %s\n", id, message)
		return err
	}
	if _, err := fmt.Fprintf(stdout, "deleted product %d:\n", id); err != nil {
		return err
	}
	value, _ := result.Value()
	return printValue(output, value)
}

// productID extracts the integer id from a products/<id> path.
func productID(path string) (int, bool) {
	rest, ok := strings.CutPrefix(path, productsPath+"/")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}
