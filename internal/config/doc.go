// Package config provides configuration management for the erpath CLI.
//
// # Configuration File
//
// The default configuration file location is <ConfigHome>/erpath/config.yaml
// (see package paths). The file uses YAML:
//
//	version: 1
//	output: text        # text, json, yaml or toml
//	install_dir: 'D:\SteamLibrary\steamapps\common\ELDEN RING\Game'
//
// install_dir records the game folder the user last accepted with
// "erpath validate --save". It is only a preference: detection still runs
// the full registry and library scan.
//
// Every key may also be set from the environment with the ERPATH_ prefix,
// e.g. ERPATH_OUTPUT=json.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//
// Loading with an empty path searches the default locations and falls back
// to defaults when no file exists. An explicit path must exist.
package config
