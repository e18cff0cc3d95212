// Package yamlprint writes values to a terminal as YAML documents.
package yamlprint

import (
	"io"

	"gopkg.in/yaml.v3"
)

func Encode(w io.Writer, value any) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(value); err != nil {
		return err
	}
	return e.Close()
}
