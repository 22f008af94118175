package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scaffoldr/scaffoldr/internal/branding"
	"github.com/scaffoldr/scaffoldr/internal/installer"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyInstaller      = "installer"
	KeyPackageManager = "package_manager"
	KeyLayout         = "layout"
)

var knownKeys = map[string]string{
	KeyInstaller:      "installer command line, e.g. \"pnpm install --frozen-lockfile\"",
	KeyPackageManager: "package manager preset: npm, pnpm, yarn or bun",
	KeyLayout:         "path to a layout YAML file used instead of the built-in layout",
}

// Dir returns the path to the config directory (~/.scaffoldr/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; a malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Reset discards all loaded settings and flag bindings.
func Reset() {
	viper.Reset()
}

// BindFlag makes flag override the config file and environment for key.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding config key %q: flag is nil", key)
	}
	return viper.BindPFlag(key, flag)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is a recognized setting.
func IsKnown(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

// Keys returns the recognized setting names, sorted.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns a one-line description of key.
func Describe(key string) string {
	return knownKeys[key]
}

// Set writes a single key to the config file, leaving the other keys in the
// file as they were. Environment and flag overrides are never persisted.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q: known keys are %s", key, strings.Join(Keys(), ", "))
	}
	if err := validateValue(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// validateValue rejects settings that would only fail on the next run.
func validateValue(key, value string) error {
	switch key {
	case KeyInstaller:
		if _, err := installer.ParseCommand(value); err != nil {
			return err
		}
	case KeyPackageManager:
		if _, err := installer.Preset(value); err != nil {
			return err
		}
	}
	return nil
}
