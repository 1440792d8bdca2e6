package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML writes v as a YAML document.
func YAML(w io.Writer, v View) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding view: %w", err)
	}
	return enc.Close()
}
