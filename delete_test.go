package main

import (
	"testing"

	"github.com/storeops/storectl/internal/assert"
)

var deleteTests = tests{
	"a numeric id is deleted and the reply restated": func(t *testing.T) {
		server := newProductsServer(t)

		outText, errText, code := storectl(t, "DELETE", "products/7")
		assert.Equal(t, code, 0)
		assert.Equal(t, errText, "")
		assert.Equal(t, outText, "deleted product 7: request completed with status 200\n")
		assert.DeepEqual(t, server.calls(), []string{"DELETE /products/7"})
	},

	"a non-numeric id is rejected without a request": func(t *testing.T) {
		server := newProductsServer(t)

		_, errText, code := storectl(t, "DELETE", "products/seven")
		assert.Equal(t, code, 2)
		assert.Contains(t, errText, "expects products/<id> with an integer id")
		assert.DeepEqual(t, server.calls(), []string(nil))
	},

	"the collection route cannot be deleted": func(t *testing.T) {
		server := newProductsServer(t)

		_, _, code := storectl(t, "DELETE", "products")
		assert.Equal(t, code, 2)
		assert.DeepEqual(t, server.calls(), []string(nil))
	},

	"show the DELETE command help with the long option": func(t *testing.T) {
		outText, errText, code := storectl(t, "DELETE", "products/7", "--help")
		assert.Equal(t, code, 0)
		assert.HasPrefix(t, outText, "Usage:\tstorectl DELETE")
		assert.Equal(t, errText, "")
	},
}
