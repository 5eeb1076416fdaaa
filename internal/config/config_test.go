package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Setenv("TABLEBOOK_HOME", dir)
	return dir
}

func TestDirHonorsHomeOverride(t *testing.T) {
	dir := isolate(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestDefaults(t *testing.T) {
	isolate(t)
	Load()

	s := Current()
	if s.APIURL != "http://localhost:3000" {
		t.Errorf("APIURL = %q", s.APIURL)
	}
	if s.Debounce != 300*time.Millisecond {
		t.Errorf("Debounce = %v, want 300ms", s.Debounce)
	}
	if s.RedirectDelay != 1500*time.Millisecond {
		t.Errorf("RedirectDelay = %v, want 1.5s", s.RedirectDelay)
	}
	if s.SlotStart != "10:00" || s.SlotEnd != "22:00" || s.SlotInterval != 30 {
		t.Errorf("slots = %s-%s/%d", s.SlotStart, s.SlotEnd, s.SlotInterval)
	}
	if s.Tab != "default" {
		t.Errorf("Tab = %q, want default", s.Tab)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("TABLEBOOK_API_URL", "http://api.example.test/")
	t.Setenv("TABLEBOOK_SLOTS_INTERVAL", "15")
	Load()

	s := Current()
	if s.APIURL != "http://api.example.test" {
		t.Errorf("APIURL = %q, trailing slash should be trimmed", s.APIURL)
	}
	if s.SlotInterval != 15 {
		t.Errorf("SlotInterval = %d, want 15", s.SlotInterval)
	}
}

func TestDotEnvInConfigDir(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("TABLEBOOK_TAB")
	t.Cleanup(func() { os.Unsetenv("TABLEBOOK_TAB") })
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TABLEBOOK_TAB=window-2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	Load()

	if got := Current().Tab; got != "window-2" {
		t.Errorf("Tab = %q, want window-2", got)
	}
}

func TestSetPersists(t *testing.T) {
	dir := isolate(t)
	Load()

	if err := Set(KeyLogLevel, "debug"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyLogLevel); got != "debug" {
		t.Errorf("Get(log_level) = %q, want debug", got)
	}
}
