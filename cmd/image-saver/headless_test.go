package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"image-saver/internal/config"
	"image-saver/internal/platform/paths"
)

func TestRunHeadlessIgnoresGUIArgs(t *testing.T) {
	handled, err := runHeadlessArgs([]string{"--show"}, &bytes.Buffer{}, discardUILogger())
	if handled || err != nil {
		t.Fatalf("expected GUI mode, got handled=%v err=%v", handled, err)
	}
}

func TestRunHeadlessUpdatesConfig(t *testing.T) {
	t.Setenv(paths.HomeEnv, t.TempDir())
	out := t.TempDir()

	var buf bytes.Buffer
	handled, err := runHeadlessArgs([]string{
		"--headless",
		"--picker", "fixed",
		"--default-folder", out,
		"--allowed-origin", "http://localhost:5173",
		"--match-extension",
		"--generate-token",
	}, &buf, discardUILogger())
	if !handled || err != nil {
		t.Fatalf("expected handled without error, got handled=%v err=%v", handled, err)
	}
	if !strings.Contains(buf.String(), "Config saved.") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Picker != config.PickerFixed || cfg.DefaultFolder != out || !cfg.MatchExtension {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if len(cfg.BearerToken) != 64 {
		t.Fatalf("expected generated token, got %q", cfg.BearerToken)
	}
}

func TestRunHeadlessRejectsInvalidPicker(t *testing.T) {
	t.Setenv(paths.HomeEnv, t.TempDir())

	handled, err := runHeadlessArgs([]string{"--cli", "--picker", "telepathy"}, &bytes.Buffer{}, discardUILogger())
	if !handled || err == nil {
		t.Fatalf("expected invalid picker error, got handled=%v err=%v", handled, err)
	}
}

func TestRunHeadlessSaveBatch(t *testing.T) {
	t.Setenv(paths.HomeEnv, t.TempDir())
	out := t.TempDir()

	batch := filepath.Join(t.TempDir(), "batch.json")
	body := `{"images":[
		{"filename":"a","data":"data:image/png;base64,iVBORw0KGgo="},
		{"filename":"b","data":"nope"},
		{"filename":"c","data":"x,AAAA","subdir":"more"}
	]}`
	if err := os.WriteFile(batch, []byte(body), 0o600); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	var buf bytes.Buffer
	handled, err := runHeadlessArgs([]string{
		"--headless",
		"--picker=fixed",
		"--default-folder=" + out,
		"--save-batch=" + batch,
	}, &buf, discardUILogger())
	if !handled || err != nil {
		t.Fatalf("expected handled without error, got handled=%v err=%v", handled, err)
	}

	want := "Saved 2 images, 1 failed. Location: " + out
	if !strings.Contains(buf.String(), want) {
		t.Fatalf("expected %q in output:\n%s", want, buf.String())
	}
	if _, err := os.Stat(filepath.Join(out, "more", "c.jpg")); err != nil {
		t.Fatalf("expected nested file: %v", err)
	}
}

func TestRunHeadlessSaveBatchUsesDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv(paths.HomeEnv, home)
	for _, key := range []string{config.EnvPicker, config.EnvDefaultFolder} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		os.Unsetenv(config.EnvPicker)
		os.Unsetenv(config.EnvDefaultFolder)
	})

	out := t.TempDir()
	dotenv := config.EnvPicker + "=fixed\n" + config.EnvDefaultFolder + "=" + out + "\n"
	if err := os.WriteFile(filepath.Join(home, ".env"), []byte(dotenv), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	batch := filepath.Join(t.TempDir(), "batch.json")
	body := `{"images":[{"filename":"a","data":"data:image/png;base64,iVBORw0KGgo="}]}`
	if err := os.WriteFile(batch, []byte(body), 0o600); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	var buf bytes.Buffer
	handled, err := runHeadlessArgs([]string{"--headless", "--save-batch", batch}, &buf, discardUILogger())
	if !handled || err != nil {
		t.Fatalf("expected handled without error, got handled=%v err=%v", handled, err)
	}
	if _, err := os.Stat(filepath.Join(out, "a.jpg")); err != nil {
		t.Fatalf("expected image in the .env folder: %v", err)
	}
	if strings.Contains(buf.String(), "Config saved.") {
		t.Fatalf("env values must not be saved:\n%s", buf.String())
	}
	if _, err := config.Load(); err != config.ErrNotFound {
		t.Fatalf("expected no config.yaml, got %v", err)
	}
}
