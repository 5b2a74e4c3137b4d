package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", s.Theme)
	}
	if !s.LineNumbers {
		t.Error("LineNumbers should default to true")
	}
	if s.WordWrap {
		t.Error("WordWrap should default to false")
	}
	if s.FrameInterval() != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 16ms", s.FrameInterval())
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "theme: light\nwordWrap: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "light" {
		t.Errorf("Theme = %q, want light", s.Theme)
	}
	if !s.WordWrap {
		t.Error("WordWrap should be true")
	}
	// Untouched keys keep their defaults.
	if s.FrameIntervalMS != 16 {
		t.Errorf("FrameIntervalMS = %d, want 16", s.FrameIntervalMS)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed yaml")
	}
}

func TestFrameIntervalFallback(t *testing.T) {
	s := Settings{FrameIntervalMS: 0}
	if s.FrameInterval() != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, want fallback 16ms", s.FrameInterval())
	}
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	changed := make(chan Settings, 4)
	w, err := Watch(path, func(s Settings) { changed <- s })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("theme: light\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case s := <-changed:
		if s.Theme != "light" {
			t.Errorf("reloaded Theme = %q, want light", s.Theme)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestLoadLineNumbersFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("lineNumbers: false\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.LineNumbers {
		t.Error("LineNumbers should be false")
	}
}
