package paths

import (
	"path/filepath"
	"testing"
)

func TestAppFilesFollowHomeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)

	cfg, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if cfg != filepath.Join(home, "config.yaml") {
		t.Fatalf("unexpected config path %s", cfg)
	}

	logPath, err := LoggerFilePath()
	if err != nil {
		t.Fatalf("logger path: %v", err)
	}
	if filepath.Dir(logPath) != home {
		t.Fatalf("expected log under %s, got %s", home, logPath)
	}
}
