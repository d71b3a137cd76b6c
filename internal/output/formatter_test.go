package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	if got, err := ParseFormat(""); err != nil || got != FormatText {
		t.Fatalf("ParseFormat(\"\") got=%q err=%v", got, err)
	}
	if got, err := ParseFormat("JSON"); err != nil || got != FormatJSON {
		t.Fatalf("ParseFormat(JSON) got=%q err=%v", got, err)
	}
	if got, err := ParseFormat("yaml"); err != nil || got != FormatYAML {
		t.Fatalf("ParseFormat(yaml) got=%q err=%v", got, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected invalid format error")
	}
	if FormatText.Structured() || !FormatJSON.Structured() {
		t.Fatalf("unexpected Structured() result")
	}
}

func TestWriteStructuredJSONAndYAML(t *testing.T) {
	payload := map[string]any{"mode": "Production", "markerAction": "written"}

	jsonOut := &bytes.Buffer{}
	if err := WriteStructured(jsonOut, FormatJSON, payload); err != nil {
		t.Fatalf("WriteStructured(JSON) error = %v", err)
	}
	if !strings.Contains(jsonOut.String(), "\"mode\": \"Production\"") {
		t.Fatalf("unexpected json output: %s", jsonOut.String())
	}

	yamlOut := &bytes.Buffer{}
	if err := WriteStructured(yamlOut, FormatYAML, payload); err != nil {
		t.Fatalf("WriteStructured(YAML) error = %v", err)
	}
	if !strings.Contains(yamlOut.String(), "mode: Production") {
		t.Fatalf("unexpected yaml output: %s", yamlOut.String())
	}

	if err := WriteStructured(&bytes.Buffer{}, FormatText, payload); err == nil {
		t.Fatalf("expected error for text format")
	}
}

func TestWriteTable(t *testing.T) {
	out := &bytes.Buffer{}
	err := WriteTable(out, "  - ", nil, [][]string{{"VERCEL:", "false"}, {"NODE_ENV:", "undefined"}})
	if err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	if !strings.Contains(out.String(), "  - VERCEL:") || !strings.Contains(out.String(), "undefined") {
		t.Fatalf("unexpected table output: %s", out.String())
	}

	err = WriteTable(out, "", []string{"A", "B"}, [][]string{{"only-one"}})
	if err == nil {
		t.Fatalf("expected column mismatch error")
	}
}
