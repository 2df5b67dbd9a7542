package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/winapp/winapp-cli/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// DetectResult is the top-level output of the `detect` command.
type DetectResult struct {
	App       string `yaml:"app"                 json:"app"`
	Type      string `yaml:"type"                json:"type"`
	ClassName string `yaml:"className,omitempty" json:"className,omitempty"`
	Framework string `yaml:"framework,omitempty" json:"framework,omitempty"`
	Title     string `yaml:"title,omitempty"     json:"title,omitempty"`
	TS        int64  `yaml:"ts"                  json:"ts"`
}

// NavigateResult is the top-level output of the `navigate` and `run` commands.
type NavigateResult struct {
	App    string   `yaml:"app"              json:"app"`
	Type   string   `yaml:"type,omitempty"   json:"type,omitempty"`
	Path   []string `yaml:"path"             json:"path"`
	Status string   `yaml:"status"           json:"status"`
	TS     int64    `yaml:"ts"               json:"ts"`
}

// FieldInfo describes one input field of an identified dialog.
type FieldInfo struct {
	Role string `yaml:"role"           json:"role"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// DialogResult is the top-level output of the `dialog` command.
type DialogResult struct {
	App     string      `yaml:"app"               json:"app"`
	Kind    string      `yaml:"kind"              json:"kind"`
	Fields  []FieldInfo `yaml:"fields,omitempty"  json:"fields,omitempty"`
	Buttons []string    `yaml:"buttons,omitempty" json:"buttons,omitempty"`
	TS      int64       `yaml:"ts"                json:"ts"`
}

// FillResult is the top-level output of the `fill` command.
type FillResult struct {
	App    string `yaml:"app"    json:"app"`
	Filled int    `yaml:"filled" json:"filled"`
	Status string `yaml:"status" json:"status"`
	TS     int64  `yaml:"ts"     json:"ts"`
}

// WindowsResult is the top-level output of the `windows` command.
type WindowsResult struct {
	Windows []model.Window `yaml:"windows" json:"windows"`
	TS      int64          `yaml:"ts"      json:"ts"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
