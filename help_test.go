package main

import (
	"testing"

	"github.com/storeops/storectl/internal/assert"
)

var helpTests = tests{
	"help lists the available commands": func(t *testing.T) {
		outText, errText, code := storectl(t, "help")
		assert.Equal(t, code, 0)
		assert.HasPrefix(t, outText, "Usage:\tstorectl help")
		assert.Contains(t, outText, "GET")
		assert.Contains(t, outText, "POST")
		assert.Contains(t, outText, "DELETE")
		assert.Equal(t, errText, "")
	},

	"help on a command prints its usage": func(t *testing.T) {
		outText, _, code := storectl(t, "help", "GET")
		assert.Equal(t, code, 0)
		assert.HasPrefix(t, outText, "Usage:\tstorectl GET")
	},

	"help accepts lowercase command names": func(t *testing.T) {
		outText, _, code := storectl(t, "help", "delete")
		assert.Equal(t, code, 0)
		assert.HasPrefix(t, outText, "Usage:\tstorectl DELETE")
	},

	"help on an unknown command is an error": func(t *testing.T) {
		_, errText, code := storectl(t, "help", "whatever")
		assert.Equal(t, code, 2)
		assert.HasPrefix(t, errText, "storectl help whatever: unknown command")
	},
}
