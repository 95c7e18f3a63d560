package provider

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_PLANNER_KEY", "secret-from-env")

	dir := t.TempDir()
	path := filepath.Join(dir, "providers.yaml")
	content := `providers:
  - name: openai
    base_url: https://api.openai.com/v1
    api_key: ${TEST_PLANNER_KEY}
    api_mode: chat
    timeout_seconds: 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	primary := config.Primary()
	if primary == nil {
		t.Fatal("Primary() returned nil")
	}
	if primary.APIKey != "secret-from-env" {
		t.Errorf("env var not expanded: %q", primary.APIKey)
	}
	if primary.APIMode != APIModeChat {
		t.Errorf("unexpected api_mode: %q", primary.APIMode)
	}
	if primary.TimeoutSeconds != 60 {
		t.Errorf("unexpected timeout: %d", primary.TimeoutSeconds)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no providers",
			content: "providers: []\n",
			wantErr: "no providers configured",
		},
		{
			name: "missing api key",
			content: `providers:
  - name: openai
`,
			wantErr: "api key is required",
		},
		{
			name: "bad api mode",
			content: `providers:
  - name: openai
    api_key: k
    api_mode: grpc
`,
			wantErr: "api_mode",
		},
		{
			name:    "not yaml",
			content: "{{{{",
			wantErr: "unmarshal config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "providers.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("LoadConfig() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadConfig() expected error for missing file")
	}
}

func TestNew_SelectsVariantByAPIMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		wantChat bool
	}{
		{name: "responses mode", mode: APIModeResponses, wantChat: false},
		{name: "empty mode defaults to responses", mode: "", wantChat: false},
		{name: "chat mode", mode: APIModeChat, wantChat: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(&Config{Name: "openai", APIKey: "k", APIMode: tt.mode})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			_, isChat := client.(*ChatClient)
			if isChat != tt.wantChat {
				t.Errorf("New() variant = %T, wantChat %v", client, tt.wantChat)
			}
			if client.Name() != "openai" {
				t.Errorf("Name() = %q", client.Name())
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) expected error")
	}
	if _, err := New(&Config{Name: "openai"}); err == nil {
		t.Error("New() without api key expected error")
	}
}

func TestDefaultFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("OPENAI_API_MODE", "chat")

	cfg := DefaultFromEnv()
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.APIMode != APIModeChat {
		t.Errorf("APIMode = %q", cfg.APIMode)
	}
}

func TestSaveDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".planner", "providers.yaml")

	if err := SaveDefaultConfig(path); err != nil {
		t.Fatalf("SaveDefaultConfig() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "api_mode: responses") {
		t.Errorf("template missing api_mode: %s", data)
	}

	if err := SaveDefaultConfig(path); err == nil {
		t.Error("SaveDefaultConfig() should refuse to overwrite")
	}
}
