// Package config loads the facade's process settings from a YAML file, environment
// variables and command-line flags. It covers the default subsystem, the deployment
// environment, the verbose-mode override and the platform sink selection.
package config
