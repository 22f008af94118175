// Package config manages user-level settings stored at ~/.scaffoldr/config.yaml.
// Values resolve from command-line flags, then SCAFFOLDR_* environment
// variables, then the config file. Settings cover the default installer
// command, package manager, and layout file.
package config
