package main

import (
	"strings"
	"testing"

	"github.com/storeops/storectl/internal/assert"
)

var versionTests = tests{
	"show the version command help with the short option": func(t *testing.T) {
		outText, errText, code := storectl(t, "version", "-h")
		assert.Equal(t, code, 0)
		assert.HasPrefix(t, outText, "Usage:\tstorectl version")
		assert.Equal(t, errText, "")
	},

	"the version starts with the program name": func(t *testing.T) {
		outText, errText, code := storectl(t, "version")
		assert.Equal(t, code, 0)
		assert.HasPrefix(t, outText, "storectl ")
		assert.Equal(t, errText, "")
	},

	"the version number is not empty": func(t *testing.T) {
		outText, _, code := storectl(t, "version")
		assert.Equal(t, code, 0)

		_, version, _ := strings.Cut(strings.TrimSpace(outText), " ")
		assert.NotEqual(t, version, "")
	},

	"passing an unsupported flag to the command causes an error": func(t *testing.T) {
		_, errText, code := storectl(t, "version", "-_")
		assert.Equal(t, code, 2)
		assert.NotEqual(t, errText, "")
	},
}
