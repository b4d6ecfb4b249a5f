// Package config loads conversion options for markdown2html from an
// optional configuration file.
//
// The file format is chosen by extension:
//   - .yaml, .yml: gopkg.in/yaml.v3
//   - .json, .jsonc: comments and trailing commas are stripped with
//     github.com/tidwall/jsonc, then parsed with encoding/json
//   - .toml: github.com/BurntSushi/toml
//
// In every format the options live under a top-level "markdown2html" key,
// so the file can be shared with other tools. Keys the converter does not
// know are ignored.
//
// Example (YAML):
//
//	markdown2html:
//	  escape_html: true
//	  skip_blank_lines: false
//	  trim_space: true
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/rachael-ojo/alx-frontend-for-fun/internal/markdown"
)

// Section is the top-level key holding converter options.
const Section = "markdown2html"

// Format identifies a supported configuration file syntax.
type Format string

const (
	// FormatYAML is YAML 1.2 via yaml.v3.
	FormatYAML Format = "yaml"

	// FormatJSON is JSON, optionally with comments (JSONC).
	FormatJSON Format = "json"

	// FormatTOML is TOML v1.0.
	FormatTOML Format = "toml"
)

// fileWrapper selects the "markdown2html" section in every format.
type fileWrapper struct {
	Options markdown.Options `yaml:"markdown2html" json:"markdown2html" toml:"markdown2html"`
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config format %q (valid: .yaml, .yml, .json, .jsonc, .toml)", filepath.Ext(path))
	}
}

// Load reads converter options from path. An empty path returns the
// default Options without touching the filesystem.
//
// All failures are returned as a model.CLIError of kind KindConfig.
func Load(path string) (markdown.Options, error) {
	if path == "" {
		return markdown.Options{}, nil
	}

	format, err := DetectFormat(path)
	if err != nil {
		return markdown.Options{}, configError(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return markdown.Options{}, configError(path, err)
	}

	opts, err := Parse(data, format)
	if err != nil {
		return markdown.Options{}, configError(path, err)
	}
	return opts, nil
}

// Parse decodes options from data in the given format.
func Parse(data []byte, format Format) (markdown.Options, error) {
	var wrapper fileWrapper

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &wrapper); err != nil {
			return markdown.Options{}, fmt.Errorf("invalid YAML: %w", err)
		}
	case FormatJSON:
		// An empty file is treated as an empty object.
		if len(strings.TrimSpace(string(data))) == 0 {
			return markdown.Options{}, nil
		}
		if err := json.Unmarshal(jsonc.ToJSON(data), &wrapper); err != nil {
			return markdown.Options{}, fmt.Errorf("invalid JSON: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &wrapper); err != nil {
			return markdown.Options{}, fmt.Errorf("invalid TOML: %w", err)
		}
	default:
		return markdown.Options{}, fmt.Errorf("unsupported config format %q", format)
	}

	return wrapper.Options, nil
}
