// Package config holds runtime configuration for the streamlens CLI.
//
// Configuration flows from three sources, lowest priority first: built-in
// defaults, the optional .streamlens YAML file, and CLI flags. The Config
// struct is populated once after flag parsing and passed down by dependency
// injection; there is no global state.
package config
