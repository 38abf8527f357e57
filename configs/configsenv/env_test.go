package configsenv

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnv(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Errorf("LoadEnv on a missing file returned nil")
	}

	const key = "PORTFOLIO_TEST_FROM_FILE"
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })
	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := GetEnv(key, "default"); got != "from-file" {
		t.Errorf("GetEnv(%s) = %q, want from-file", key, got)
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_INT", "12")
	t.Setenv("PORTFOLIO_TEST_BAD_INT", "twelve")
	t.Setenv("PORTFOLIO_TEST_BOOL", "true")
	t.Setenv("PORTFOLIO_TEST_DURATION", "3s")

	if got := GetEnvInt("PORTFOLIO_TEST_INT", 1); got != 12 {
		t.Errorf("GetEnvInt = %d, want 12", got)
	}
	if got := GetEnvInt("PORTFOLIO_TEST_BAD_INT", 1); got != 1 {
		t.Errorf("GetEnvInt with bad value = %d, want default 1", got)
	}
	if !GetEnvBool("PORTFOLIO_TEST_BOOL", false) {
		t.Errorf("GetEnvBool = false, want true")
	}
	if got := GetEnvDuration("PORTFOLIO_TEST_DURATION", time.Second); got != 3*time.Second {
		t.Errorf("GetEnvDuration = %s, want 3s", got)
	}
	if got := GetEnv("PORTFOLIO_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want fallback", got)
	}
}
