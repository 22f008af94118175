// Package layout defines the ordered directory list that the scaffolder
// creates. It ships the built-in web-app layout and loads custom layouts
// from YAML files, validating them against an embedded JSON Schema before
// decoding and checking that every entry stays inside the base directory.
package layout
