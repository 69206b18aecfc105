package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func withHome(t *testing.T, dir string) {
	t.Helper()
	old, had := os.LookupEnv("HOME")
	os.Setenv("HOME", dir)
	t.Cleanup(func() {
		if had {
			os.Setenv("HOME", old)
		} else {
			os.Unsetenv("HOME")
		}
	})
}

func TestLoadRCDefaultsWithoutFile(t *testing.T) {
	withHome(t, t.TempDir())
	cfg := loadRC()
	if cfg.Prompt != defaultPrompt {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, defaultPrompt)
	}
	if cfg.Trace || cfg.HistoryFile != "" {
		t.Errorf("unexpected non-zero config with no rc file: %+v", cfg)
	}
}

func TestLoadRCReadsFile(t *testing.T) {
	home := t.TempDir()
	withHome(t, home)

	rc := "trace: true\nprompt: \"rstack> \"\nhistory_file: \"/tmp/rstack_history\"\n"
	if err := os.WriteFile(filepath.Join(home, ".rstackrc.yaml"), []byte(rc), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := loadRC()
	if !cfg.Trace {
		t.Error("Trace = false, want true")
	}
	if cfg.Prompt != "rstack> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "rstack> ")
	}
	if cfg.HistoryFile != "/tmp/rstack_history" {
		t.Errorf("HistoryFile = %q, want /tmp/rstack_history", cfg.HistoryFile)
	}
}

func TestLoadRCBlankPromptFallsBackToDefault(t *testing.T) {
	home := t.TempDir()
	withHome(t, home)

	if err := os.WriteFile(filepath.Join(home, ".rstackrc.yaml"), []byte("trace: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := loadRC()
	if cfg.Prompt != defaultPrompt {
		t.Errorf("Prompt = %q, want default %q when rc omits it", cfg.Prompt, defaultPrompt)
	}
}
