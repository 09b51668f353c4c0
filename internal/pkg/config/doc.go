// Package config provides the settings of the workbench applications.
//
// Logger and workbench settings are validated with go-playground/validator.
// The REST API reads its settings from YAML through viper, with CRYPTO_WORKBENCH_*
// environment variables taking precedence over the file.
package config
