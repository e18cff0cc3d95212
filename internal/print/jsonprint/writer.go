// Package jsonprint writes values to a terminal as indented JSON.
package jsonprint

import (
	"encoding/json"
	"io"
)

func Encode(w io.Writer, value any) error {
	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	e.SetIndent("", "  ")
	return e.Encode(value)
}
