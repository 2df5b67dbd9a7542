package output

import (
	"bytes"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPrintYAML(t *testing.T) {
	result := DetectResult{
		App:       "Demo App",
		Type:      "dotnet_wpf",
		ClassName: "Window",
		Framework: "WPF",
		TS:        1707500000,
	}

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := PrintYAML(result)
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	out := buf.String()

	// YAML output should be multi-line
	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	// Verify it's valid YAML
	var decoded DetectResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Type != "dotnet_wpf" {
		t.Errorf("type: got %q, want %q", decoded.Type, "dotnet_wpf")
	}
}

func TestDialogResult_OmitEmpty(t *testing.T) {
	result := DialogResult{
		App:  "Demo App",
		Kind: "none",
		TS:   123,
	}
	data, err := yaml.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	// Fields and buttons should be omitted when no dialog was found
	if _, ok := m["fields"]; ok {
		t.Error("empty fields should be omitted")
	}
	if _, ok := m["buttons"]; ok {
		t.Error("empty buttons should be omitted")
	}
	// Kind and TS should always be present
	if _, ok := m["kind"]; !ok {
		t.Error("kind should always be present")
	}
	if _, ok := m["ts"]; !ok {
		t.Error("ts should always be present")
	}
}
