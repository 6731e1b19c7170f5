package service

import (
	"os"
	"path/filepath"
	"testing"

	"fanhub-go/internal/config"
	"fanhub-go/pkg/logger"
)

const testConfigYAML = `app:
  name: fanhub-test
  mode: test
auth:
  admin_token: test-admin-token
log:
  level: warn
  format: console
  output: stdout
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fanhub-config")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o600); err != nil {
		panic(err)
	}
	if _, err := config.Load(path); err != nil {
		panic(err)
	}
	if err := logger.Init("warn", "console", "stdout", ""); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
