// Package output renders command results in the formats the CLI supports.
package output

import (
	"encoding/json"
	"io"
	"slices"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/erpath/internal/errors"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported format in display order.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat validates s. An empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	if !slices.Contains(Formats(), s) {
		return "", errors.Wrapf(errors.ErrInvalidFormat, "%q (valid: text, json, yaml, toml)", s)
	}
	return Format(s), nil
}

// TextFunc writes the human-readable form of a value.
type TextFunc func(w io.Writer) error

// Render writes v to w in format f. Structured formats encode v directly;
// FormatText delegates to text. The TOML encoder requires v to be a struct
// or map.
func Render(w io.Writer, f Format, v any, text TextFunc) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding JSON")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(v), "encoding TOML")
	case FormatText, "":
		if text == nil {
			return errors.New("no text renderer")
		}
		return text(w)
	default:
		return errors.Wrapf(errors.ErrInvalidFormat, "%q", f)
	}
}
