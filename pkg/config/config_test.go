package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not written: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *reloaded != *DefaultConfig() {
		t.Errorf("reloaded = %+v, want defaults", reloaded)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
[picker]
visible_limit = 8
prompt = "? "

[server]
max_limit = 50
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Picker.VisibleLimit != 8 || cfg.Picker.Prompt != "? " {
		t.Errorf("picker = %+v", cfg.Picker)
	}
	if cfg.Server.MaxLimit != 50 || cfg.Server.MaxQuery != DefaultConfig().Server.MaxQuery {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.UI != DefaultConfig().UI {
		t.Errorf("ui = %+v, want defaults", cfg.UI)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// visible_limit has the wrong type, so the typed decode fails
	path := writeFile(t, t.TempDir(), `
[picker]
visible_limit = "ten"
unique = true

[ui]
truncate = false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Picker.VisibleLimit != DefaultConfig().Picker.VisibleLimit {
		t.Errorf("visible_limit = %d, want default", cfg.Picker.VisibleLimit)
	}
	if !cfg.Picker.Unique {
		t.Error("unique should be salvaged")
	}
	if cfg.UI.Truncate {
		t.Error("truncate should be salvaged")
	}
}

func TestLoadConfigGarbage(t *testing.T) {
	path := writeFile(t, t.TempDir(), "this is [not toml")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Picker.VisibleLimit = 0
	cfg.Server.MaxLimit = -1
	cfg.Validate()
	if cfg.Picker.VisibleLimit != 20 || cfg.Server.MaxLimit != 200 {
		t.Errorf("Validate left %+v", cfg)
	}
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "[picker]\nvisible_limit = 3\n")
	cfg, used, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPriority: %v", err)
	}
	if used != path || cfg.Picker.VisibleLimit != 3 {
		t.Errorf("got path %q limit %d", used, cfg.Picker.VisibleLimit)
	}
}
