// Package cliconfig provides configuration types and loading for the
// mockdata CLI.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (MOCKDATA_* prefix)
//  3. Local config file (.mockdatarc.yaml in current directory)
//  4. Global config file ($XDG_CONFIG_HOME/mockdata/config.yaml)
//  5. Default values
//
// Every value remembers the layer it came from in Config.Sources, which
// `mockdata config` prints.
package cliconfig
