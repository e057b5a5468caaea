package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const AppName = "image-saver"

// HomeEnv overrides the per-user application directory.
const HomeEnv = "IMAGE_SAVER_HOME"

func AppDir() (string, error) {
	if home := strings.TrimSpace(os.Getenv(HomeEnv)); home != "" {
		return filepath.Clean(home), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if base == "" {
		return "", errors.New("user config directory is unknown")
	}
	return filepath.Join(base, AppName), nil
}

func ConfigFilePath() (string, error) {
	return appFile("config.yaml")
}

func EnvFilePath() (string, error) {
	return appFile(".env")
}

func appFile(name string) (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
