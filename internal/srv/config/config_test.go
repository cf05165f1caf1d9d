package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNewServerConfigCreatesDefaultParamFile(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "nested", "vekiplaylist")

	sc := NewServerConfig(configDir, false)

	if _, err := os.Stat(sc.GetCompleteParamFilename()); err != nil {
		t.Fatalf("Expected param file to be created: %v", err)
	}
	if !sc.ApiParam.Enabled {
		t.Error("Expected api to be enabled by default")
	}
	if sc.ApiParam.Port != 8443 {
		t.Errorf("Expected default port 8443, got %d", sc.ApiParam.Port)
	}
	if !sc.ApiParam.Ssl {
		t.Error("Expected ssl to be enabled by default")
	}
	if len(sc.PlaylistParam.InitialSongs) != 0 {
		t.Errorf("Expected no initial songs, got %v", sc.PlaylistParam.InitialSongs)
	}
}

func TestNewServerConfigReadsExistingParamFile(t *testing.T) {
	configDir := t.TempDir()
	content := []byte(`api:
  enabled: false
  port: 9000
  ssl: false
  api_key: "secret"
playlist:
  initial_songs: ["A", "B"]
  autoplay: true
`)
	err := os.WriteFile(filepath.Join(configDir, paramFilename), content, 0660)
	if err != nil {
		t.Fatalf("Failed to write param file: %v", err)
	}

	sc := NewServerConfig(configDir, true)

	if !sc.DebugMode {
		t.Error("Expected debug mode")
	}
	if sc.ApiParam.Enabled || sc.ApiParam.Ssl {
		t.Errorf("Expected api and ssl disabled, got %+v", sc.ApiParam)
	}
	if sc.ApiParam.Port != 9000 || sc.ApiParam.ApiKey != "secret" {
		t.Errorf("Unexpected api param %+v", sc.ApiParam)
	}
	if !reflect.DeepEqual(sc.PlaylistParam.InitialSongs, []string{"A", "B"}) {
		t.Errorf("Unexpected initial songs %v", sc.PlaylistParam.InitialSongs)
	}
	if !sc.PlaylistParam.Autoplay {
		t.Error("Expected autoplay")
	}
}

func TestLoadServerParamErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadServerParam(filepath.Join(dir, "missing.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("api: [unclosed"), 0660); err != nil {
		t.Fatalf("Failed to write param file: %v", err)
	}
	if _, err := LoadServerParam(invalid); err == nil {
		t.Error("Expected decoding error")
	}
}
