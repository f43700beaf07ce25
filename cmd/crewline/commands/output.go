package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// printYAML renders a result struct as YAML on stdout.
func printYAML(v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
