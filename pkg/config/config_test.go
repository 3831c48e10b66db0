package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"tableflip.dev/monthpick/pkg/month"
	"tableflip.dev/monthpick/pkg/picker"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".monthpick.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != "single" || cfg.Locale != "de" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Allow != nil || cfg.Source != "" {
		t.Fatalf("expected no allow-list and no source: %+v", cfg)
	}
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	dir := writeConfig(t, `
mode: range
locale: en
min: 01/2025
max: 12/2025
allow:
  - 02/2025
  - 03/2025
default:
  - 02/2025
  - 03/2025
`)
	t.Setenv(EnvConfigPath, dir)
	t.Setenv("MONTHPICK_MAX", "06/2025")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyLocale, "", "")
	flags.String(KeyMin, "", "")
	if err := flags.Parse([]string{"--locale=de"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != filepath.Join(dir, ".monthpick.yaml") {
		t.Fatalf("unexpected source %q", cfg.Source)
	}
	if cfg.Mode != "range" {
		t.Fatalf("mode from file not applied: %q", cfg.Mode)
	}
	if cfg.Locale != "de" {
		t.Fatalf("flag should win over file, got %q", cfg.Locale)
	}
	if cfg.Min != "01/2025" {
		t.Fatalf("unset flag should not hide file value, got %q", cfg.Min)
	}
	if cfg.Max != "06/2025" {
		t.Fatalf("env should win over file, got %q", cfg.Max)
	}
	if len(cfg.Allow) != 2 || cfg.Allow[1] != "03/2025" {
		t.Fatalf("unexpected allow-list %v", cfg.Allow)
	}

	opts, err := cfg.PickerOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Mode != picker.Range || opts.Locale != month.German {
		t.Fatalf("unexpected options %+v", opts)
	}
	if !opts.Constraints.Disabled(month.New(2025, 3)) {
		t.Fatalf("April 2025 is not on the allow-list")
	}
	if opts.Constraints.Disabled(month.New(2025, 2)) {
		t.Fatalf("March 2025 should be selectable")
	}
}

func TestLoadCommaSeparatedEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, t.TempDir())
	t.Setenv("MONTHPICK_ALLOW", "02/2025,03/2025")
	t.Setenv("MONTHPICK_DISALLOW", "05/2025, 06/2025")
	t.Setenv("MONTHPICK_DEFAULT", "02/2025 03/2025")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Allow) != 2 || cfg.Allow[0] != "02/2025" || cfg.Allow[1] != "03/2025" {
		t.Fatalf("unexpected allow-list %q", cfg.Allow)
	}
	if len(cfg.Disallow) != 2 || cfg.Disallow[1] != "06/2025" {
		t.Fatalf("unexpected disallow-list %q", cfg.Disallow)
	}
	if len(cfg.Default) != 2 {
		t.Fatalf("unexpected default %q", cfg.Default)
	}

	c := cfg.Constraints()
	if c.Disabled(month.New(2025, 2)) {
		t.Fatalf("March 2025 is on the allow-list and should be selectable")
	}
	if !c.Disabled(month.New(2025, 3)) {
		t.Fatalf("April 2025 is not on the allow-list")
	}
}

func TestPickerOptionsValidation(t *testing.T) {
	cfg := &Config{Mode: "multi", Locale: "en"}
	if _, err := cfg.PickerOptions(); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}

	cfg = &Config{Mode: "range", Locale: "fr"}
	if _, err := cfg.PickerOptions(); !errors.Is(err, month.ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]picker.Mode{"": picker.Single, "Single": picker.Single, " range ": picker.Range} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
}
