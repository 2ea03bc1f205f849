package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "officecrawl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config.Mode != ModeGrid {
		t.Errorf("Mode = %q, want %q", config.Mode, ModeGrid)
	}
	if config.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false")
	}
	if !config.Logging.FileEnabled || config.Logging.ConsoleEnabled {
		t.Errorf("Logging = %+v, want file only", config.Logging)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, `mode: rooms
start: breakRoom
telemetry:
  enabled: true
logging:
  level: DEBUG
  file_path: /tmp/crawl.log
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config.Mode != ModeRooms {
		t.Errorf("Mode = %q, want %q", config.Mode, ModeRooms)
	}
	if config.Start != "breakRoom" {
		t.Errorf("Start = %q, want breakRoom", config.Start)
	}
	if !config.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true")
	}
	if config.Logging.Level != "DEBUG" || config.Logging.FilePath != "/tmp/crawl.log" {
		t.Errorf("Logging = %+v", config.Logging)
	}
	// Fields not in the file keep their defaults.
	if config.Logging.FileMaxSizeMB != 10 {
		t.Errorf("FileMaxSizeMB = %d, want 10", config.Logging.FileMaxSizeMB)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OFFICECRAWL_MODE", "grid")
	t.Setenv("OFFICECRAWL_MAP", "maps/floor2.yaml")
	t.Setenv("OFFICECRAWL_START", "3")
	t.Setenv("OFFICECRAWL_TELEMETRY", "true")
	t.Setenv("LOG_LEVEL", "ERROR")

	path := writeConfig(t, "mode: rooms\n")
	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config.Mode != ModeGrid {
		t.Errorf("Mode = %q, want grid (from env var)", config.Mode)
	}
	if config.MapFile != "maps/floor2.yaml" {
		t.Errorf("MapFile = %q, want maps/floor2.yaml", config.MapFile)
	}
	if config.Start != "3" {
		t.Errorf("Start = %q, want 3", config.Start)
	}
	if !config.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true (from env var)")
	}
	if config.Logging.Level != "ERROR" {
		t.Errorf("Logging.Level = %q, want ERROR", config.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"grid", Config{Mode: ModeGrid}, false},
		{"grid with map", Config{Mode: ModeGrid, MapFile: "a.yaml"}, false},
		{"rooms", Config{Mode: ModeRooms}, false},
		{"rooms with map", Config{Mode: ModeRooms, MapFile: "a.yaml"}, true},
		{"unknown mode", Config{Mode: "hex"}, true},
		{"empty mode", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "mode: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}
