package main

import (
	"testing"

	"github.com/storeops/storectl/internal/assert"
)

var unknownTests = tests{
	"an error is reported when invoking an unknown verb": func(t *testing.T) {
		server := newProductsServer(t)

		outText, errText, code := storectl(t, "PATCH", "products/1")
		assert.Equal(t, code, 2)
		assert.Equal(t, outText, "")
		assert.HasPrefix(t, errText, "storectl PATCH: unknown command\n")
		assert.DeepEqual(t, server.calls(), []string(nil))
	},
}
