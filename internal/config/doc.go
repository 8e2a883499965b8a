// Package config wraps Viper access to the user settings file at
// ~/.rs/config.yaml. Settings are user-level (color preferences, shell
// defaults), not workspace-level; workspace behavior lives in bs.yaml.
package config
