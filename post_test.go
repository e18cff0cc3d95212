package main

import (
	"encoding/json"
	"testing"

	"github.com/storeops/storectl/internal/assert"
)

var postTests = tests{
	"a creation call carries the assembled payload": func(t *testing.T) {
		server := newProductsServer(t)

		outText, errText, code := storectl(t, "POST", "products", "Wool Scarf", "24.90", "accessories")
		assert.Equal(t, code, 0)
		assert.Equal(t, errText, "")
		assert.DeepEqual(t, server.calls(), []string{"POST /products"})

		var payload map[string]any
		assert.OK(t, json.Unmarshal(server.lastBody(), &payload))
		assert.Equal(t, payload["title"], "Wool Scarf")
		assert.Equal(t, payload["price"], 24.90)
		assert.Equal(t, payload["category"], "accessories")
		assert.Equal(t, payload["description"], defaultDescription)
		assert.Equal(t, payload["image"], defaultImage)

		var created map[string]any
		assert.OK(t, json.Unmarshal([]byte(outText), &created))
		assert.Equal(t, created["id"], 21.0)
		assert.Equal(t, created["title"], "Wool Scarf")
	},

	"description and image arguments override the placeholders": func(t *testing.T) {
		server := newProductsServer(t)

		_, _, code := storectl(t, "POST", "products", "Wool Scarf", "24.90", "accessories", "Hand knitted.", "https://example.com/scarf.jpg")
		assert.Equal(t, code, 0)

		var payload map[string]any
		assert.OK(t, json.Unmarshal(server.lastBody(), &payload))
		assert.Equal(t, payload["description"], "Hand knitted.")
		assert.Equal(t, payload["image"], "https://example.com/scarf.jpg")
	},

	"a non-numeric price is rejected without a request": func(t *testing.T) {
		server := newProductsServer(t)

		_, errText, code := storectl(t, "POST", "products", "Wool Scarf", "abc", "accessories")
		assert.Equal(t, code, 2)
		assert.Contains(t, errText, `price "abc" does not parse as a number`)
		assert.DeepEqual(t, server.calls(), []string(nil))
	},

	"missing required arguments are rejected without a request": func(t *testing.T) {
		server := newProductsServer(t)

		_, errText, code := storectl(t, "POST", "products", "Wool Scarf")
		assert.Equal(t, code, 2)
		assert.Contains(t, errText, "needs a title, a price and a category")
		assert.DeepEqual(t, server.calls(), []string(nil))
	},

	"only the collection route accepts creations": func(t *testing.T) {
		server := newProductsServer(t)

		_, errText, code := storectl(t, "POST", "products/1", "Wool Scarf", "24.90", "accessories")
		assert.Equal(t, code, 2)
		assert.Contains(t, errText, `does not support the route "products/1"`)
		assert.DeepEqual(t, server.calls(), []string(nil))
	},

	"show the POST command help with the long option": func(t *testing.T) {
		outText, errText, code := storectl(t, "POST", "products", "--help")
		assert.Equal(t, code, 0)
		assert.HasPrefix(t, outText, "Usage:\tstorectl POST")
		assert.Equal(t, errText, "")
	},
}
