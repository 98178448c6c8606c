package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vestibule.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	want := Default()
	if cfg != want {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
locale = "es"

[window]
title = "front door"
fullscreen = true

[theme]
accent = 0x008080

[log]
level = "debug"

[credentials]
username = "operator"
password = "hunter2"

[power]
device_path = "/dev/input/event1"
suspend_script = "/usr/local/bin/suspend"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if cfg.Locale != "es" {
		t.Errorf("Locale = %q, want es", cfg.Locale)
	}
	if cfg.Window.Title != "front door" || !cfg.Window.Fullscreen {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("Width = %d, want default 1024", cfg.Window.Width)
	}
	if cfg.Theme.Accent != 0x008080 {
		t.Errorf("Accent = %#x, want 0x008080", cfg.Theme.Accent)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Credentials.Username != "operator" || cfg.Credentials.Password != "hunter2" {
		t.Errorf("Credentials = %+v", cfg.Credentials)
	}
	if cfg.Power.DevicePath != "/dev/input/event1" {
		t.Errorf("Power.DevicePath = %q", cfg.Power.DevicePath)
	}
	if cfg.Power.ShutdownCommand != "/sbin/poweroff" {
		t.Errorf("Power.ShutdownCommand = %q, want default /sbin/poweroff", cfg.Power.ShutdownCommand)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, `window = "not a table"`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted a malformed file")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[credentials]
username = "admin"
passwrod = "1234"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted a misspelled key")
	}
}

func TestDefaultCredentials(t *testing.T) {
	creds := Default().Credentials
	if creds.Username != "admin" || creds.Password != "1234" {
		t.Fatalf("default credentials = %+v", creds)
	}
	if creds.PasswordHash != "" {
		t.Fatalf("default config carries a password hash: %q", creds.PasswordHash)
	}
}
