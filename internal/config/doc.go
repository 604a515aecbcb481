// Package config manages prtrain configuration.
//
// Values are layered with viper, lowest precedence first:
//   - built-in defaults
//   - the user config file (~/.config/prtrain/prtrain.yaml)
//   - the repository config file (<repo>/.git/prtrain.yaml)
//   - PRTRAIN_* environment variables
//   - command-line flags
package config
