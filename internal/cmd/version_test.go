package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	t.Cleanup(func() { versionJSON = false })

	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "openai-planner") {
		t.Errorf("output missing binary name:\n%s", out)
	}
	if !strings.Contains(out, "dev") {
		t.Errorf("output missing default version:\n%s", out)
	}

	out, err = executeCommand(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if decoded["Version"] != "dev" {
		t.Errorf("Version = %v, want dev", decoded["Version"])
	}
	if _, ok := decoded["GoVersion"]; !ok {
		t.Error("JSON output missing GoVersion")
	}
}
