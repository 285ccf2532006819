package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// writeResult renders v to w in the format selected by the global --format
// flag (yaml by default).
func writeResult(w io.Writer, v interface{}) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q (want yaml|json)", outputFormat)
	}
}
