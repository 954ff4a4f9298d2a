package cli

import (
	"os"
	"testing"
)

func TestInitCmd_CreatesConfigIfMissing(t *testing.T) {
	base := t.TempDir()
	withHomeBase(t, base, func() {
		cfgPath := configFilePath()
		if _, err := os.Stat(cfgPath); err == nil {
			t.Fatalf("expected config to not exist initially")
		}

		if err := initCmd.RunE(initCmd, nil); err != nil {
			t.Fatalf("init error: %v", err)
		}

		if _, err := os.Stat(cfgPath); err != nil {
			t.Fatalf("expected config to exist: %v", err)
		}
	})
}

func TestInitCmd_WhenConfigExists_Skips(t *testing.T) {
	base := t.TempDir()
	withHomeBase(t, base, func() {
		if err := os.MkdirAll(homeDir(), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		cfgPath := configFilePath()
		if err := os.WriteFile(cfgPath, []byte("dummy"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		if err := initCmd.RunE(initCmd, nil); err == nil {
			t.Fatalf("expected error when config already exists")
		}

		got, err := os.ReadFile(cfgPath)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(got) != "dummy" {
			t.Fatalf("expected existing config to be left untouched, got %q", got)
		}
	})
}

func TestStartCmd_RequiresInitFirst(t *testing.T) {
	base := t.TempDir()
	withHomeBase(t, base, func() {
		if err := startCmd.RunE(startCmd, nil); err == nil {
			t.Fatalf("expected error when home directory is not initialized")
		}
	})
}
