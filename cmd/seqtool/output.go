package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes a command result in the configured format. Text output puts
// one chunk per line and separates elements with a space.
func (a *app) render(result any) error {
	switch a.format() {
	case formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")

		return enc.Encode(result)
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(result); err != nil {
			return err
		}

		return enc.Close()
	default:
		return renderText(a.out, result)
	}
}

func renderText(w io.Writer, result any) error {
	var err error

	switch v := result.(type) {
	case [][]string:
		for _, chunk := range v {
			if _, err = fmt.Fprintln(w, strings.Join(chunk, " ")); err != nil {
				return err
			}
		}
	case []string:
		_, err = fmt.Fprintln(w, strings.Join(v, " "))
	default:
		_, err = fmt.Fprintln(w, v)
	}

	return err
}
