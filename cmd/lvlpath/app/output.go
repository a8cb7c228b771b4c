// SPDX-License-Identifier: MIT

package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// render renders v as YAML or JSON, or calls text for the text format.
func render(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return text(w)
	case "json":
		data, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encoding json output")
		}
		fmt.Fprintf(w, "%s\n", string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encoding yaml output")
		}
		fmt.Fprintf(w, "%s", string(data))
	default:
		return errors.Errorf("unknown output format %q", format)
	}

	return nil
}
