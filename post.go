package main

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/storeops/storectl/internal/api"
)

const postUsage = `
Usage:	storectl POST products <title> <price> <category> [description] [image] [options]

   The POST verb creates a product in the catalog. Title, price and category
   are required; description and image fall back to placeholder values when
   omitted. The created product is printed as the service returns it.

Example:

   $ storectl POST products "Wool Scarf" 24.90 "accessories"
   {
     "id": 21,
     "title": "Wool Scarf",
     ...
   }

Options:
   -c, --config path    Path to the storectl configuration file (overrides STORECTLCONFIG)
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: text, json, yaml
`

// Placeholder values substituted for the optional creation arguments.
const (
	defaultDescription = "No description provided."
	defaultImage       = "https://via.placeholder.com/640x480.png"
)

func post(ctx context.Context, cmd command) error {
	output := outputFormat("json")

	flagSet := newFlagSet("storectl POST", postUsage)
	customVar(flagSet, &output, "o", "output")

	args, err := parseFlags(flagSet, cmd.args)
	if err != nil {
		return err
	}

	if cmd.path != productsPath {
		return invalidRoute("POST", cmd.path)
	}

	draft, err := parseProductDraft(args)
	if err != nil {
		return err
	}

	client, err := apiClient()
	if err != nil {
		return err
	}
	result, err := client.Execute(ctx, http.MethodPost, cmd.path, draft)
	if err != nil {
		return err
	}
	return printResult(output, result)
}

// parseProductDraft assembles the creation payload from the positional
// arguments, before any request is issued.
func parseProductDraft(args []string) (api.ProductDraft, error) {
	if len(args) < 3 {
		return api.ProductDraft{}, usageError("storectl POST products needs a title, a price and a category%s", seeCmd("POST"))
	}

	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return api.ProductDraft{}, usageError("the price %q does not parse as a number%s", args[1], seeCmd("POST"))
	}

	draft := api.ProductDraft{
		Title:       args[0],
		Price:       price,
		Category:    args[2],
		Description: defaultDescription,
		Image:       defaultImage,
	}
	if len(args) > 3 {
		draft.Description = args[3]
	}
	if len(args) > 4 {
		draft.Image = args[4]
	}
	return draft, nil
}
