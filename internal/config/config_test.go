package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points HOME at a temp dir and clears viper state.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	Reset()
	t.Cleanup(Reset)
	return home
}

func TestFilePath(t *testing.T) {
	home := isolate(t)
	want := filepath.Join(home, ".scaffoldr", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	isolate(t)
	if err := Load(); err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if got := Get(KeyInstaller); got != "" {
		t.Errorf("Get(installer) = %q, want empty", got)
	}
}

func TestSetThenLoad(t *testing.T) {
	isolate(t)
	if err := Load(); err != nil {
		t.Fatal(err)
	}
	if err := Set(KeyInstaller, "pnpm install"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "pnpm install") {
		t.Errorf("config file missing value:\n%s", data)
	}

	Reset()
	if err := Load(); err != nil {
		t.Fatal(err)
	}
	if got := Get(KeyInstaller); got != "pnpm install" {
		t.Errorf("Get(installer) after reload = %q", got)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	isolate(t)
	if err := Set("colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Error("config file should not be created for an unknown key")
	}
}

func TestSet_WritesOnlyFileValues(t *testing.T) {
	isolate(t)
	t.Setenv("SCAFFOLDR_INSTALLER", "yarn install --from-env")
	if err := Load(); err != nil {
		t.Fatal(err)
	}

	if err := Set(KeyPackageManager, "pnpm"); err != nil {
		t.Fatal(err)
	}
	if err := Set(KeyLayout, "web.yaml"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Contains(content, "from-env") || strings.Contains(content, "installer") {
		t.Errorf("environment value persisted:\n%s", content)
	}
	for _, want := range []string{"package_manager: pnpm", "layout: web.yaml"} {
		if !strings.Contains(content, want) {
			t.Errorf("config file missing %q:\n%s", want, content)
		}
	}
}

func TestSet_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyPackageManager, "pip"},
		{KeyInstaller, ""},
		{KeyInstaller, `npm install "unclosed`},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			isolate(t)
			if err := Set(tt.key, tt.value); err == nil {
				t.Fatalf("Set(%s, %q) succeeded, want error", tt.key, tt.value)
			}
			if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
				t.Error("config file written for an invalid value")
			}
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	if err := Load(); err != nil {
		t.Fatal(err)
	}
	if err := Set(KeyPackageManager, "npm"); err != nil {
		t.Fatal(err)
	}

	Reset()
	t.Setenv("SCAFFOLDR_PACKAGE_MANAGER", "yarn")
	if err := Load(); err != nil {
		t.Fatal(err)
	}
	if got := Get(KeyPackageManager); got != "yarn" {
		t.Errorf("Get(package_manager) = %q, want env value yarn", got)
	}
}

func TestBindFlag_FlagWins(t *testing.T) {
	isolate(t)
	t.Setenv("SCAFFOLDR_INSTALLER", "yarn install")
	if err := Load(); err != nil {
		t.Fatal(err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("installer", "", "")
	if err := BindFlag(KeyInstaller, fs.Lookup("installer")); err != nil {
		t.Fatal(err)
	}

	// An unset flag does not shadow the environment.
	if got := Get(KeyInstaller); got != "yarn install" {
		t.Errorf("before parse: Get = %q, want env value", got)
	}

	if err := fs.Parse([]string{"--installer", "bun install"}); err != nil {
		t.Fatal(err)
	}
	if got := Get(KeyInstaller); got != "bun install" {
		t.Errorf("after parse: Get = %q, want flag value", got)
	}
}

func TestBindFlag_Nil(t *testing.T) {
	isolate(t)
	if err := BindFlag(KeyLayout, nil); err == nil {
		t.Fatal("expected error for nil flag")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	if err := EnsureDir(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(FilePath(), []byte("installer: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Load(); err == nil {
		t.Fatal("expected error for malformed config, got nil")
	}
}

func TestKeys(t *testing.T) {
	got := strings.Join(Keys(), ",")
	if got != "installer,layout,package_manager" {
		t.Errorf("Keys() = %s", got)
	}
	for _, k := range Keys() {
		if Describe(k) == "" {
			t.Errorf("key %s has no description", k)
		}
	}
}
