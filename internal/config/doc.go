// Package config loads, validates, and normalizes jimaku's TOML
// configuration. Load resolves the standard config locations, fills in
// defaults for anything the file omits, and returns a ready-to-use Config.
// Paths in the file may use ~ for the home directory.
package config
