package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded GameConfig
	if err := yaml.Unmarshal(defaultYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if embedded != Default() {
		t.Fatalf("embedded config %+v differs from Default() %+v", embedded, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := []byte(`
physics:
  gravity: 600
  jump_impulse: -400
  max_fall_speed: 900
playfield:
  width: 480
  height: 800
  ground_height: 64
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 600 || cfg.Physics.JumpImpulse != -400 {
		t.Fatalf("custom physics not applied: %+v", cfg.Physics)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load of a missing explicit path did not error")
	}
}

func TestLoadMalformedCustomPathErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed YAML did not error")
	}
}
