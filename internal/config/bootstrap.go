package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// ShippedPath is the repo config copied into a fresh data dir.
var ShippedPath = filepath.Join("config", "config.yml")

// DataDir is $PILIBHITJOB_DATA_DIR, or the working directory when unset.
func DataDir() string {
	if d := os.Getenv(EnvDataDir); d != "" {
		return d
	}
	return "."
}

// UserPath is the config file the engine reads for dataDir.
func UserPath(dataDir string) string {
	return filepath.Join(dataDir, "config.yml")
}

// EnsureUserConfig makes sure dataDir/config.yml exists, copying defaultPath
// when present and writing Default() otherwise.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := UserPath(dataDir)

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return userPath, writeFile(userPath, Default())
	}
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}
