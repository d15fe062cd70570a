package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLoadConfig_OverridesColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "tab_width: 8\ntheme:\n  match: \"99\"\n  status: \"#336699\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.TabWidth; got != 8 {
		t.Fatalf("tab width: got %d, want 8", got)
	}

	styles := cfg.Styles()
	if got, want := styles.Match.GetBackground(), lipgloss.Color("99"); got != want {
		t.Fatalf("match background: got %v, want %v", got, want)
	}
	if got, want := styles.Status.GetBackground(), lipgloss.Color("#336699"); got != want {
		t.Fatalf("status background: got %v, want %v", got, want)
	}
	if got, want := styles.Status.GetForeground(), DefaultStyles().Status.GetForeground(); got != want {
		t.Fatalf("status foreground should keep the default: got %v, want %v", got, want)
	}
}

func TestStyles_EmptyFileKeepsDefaults(t *testing.T) {
	var cfg File
	styles := cfg.Styles()

	if got, want := styles.Match.GetBackground(), DefaultStyles().Match.GetBackground(); got != want {
		t.Fatalf("match background: got %v, want %v", got, want)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing config file should fail")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t:bad"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed config file should fail")
	}
}
