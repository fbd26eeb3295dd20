// Package config loads and validates snipsync configuration.
//
// Values are merged from three sources, later sources filling gaps left by
// earlier ones: command-line overrides supplied by the CLI layer, environment
// variables, and an optional JSON configuration file. Merging is performed
// with dario.cat/mergo over a shared [StructuredConfig] shape.
package config
