// Package config provides configuration loading and validation for treekit
// drivers.
//
// It uses Viper to load configuration from files and environment variables,
// godotenv for .env files, and struct tag validation (via the validator
// library) for checking the loaded result.
//
// # Usage
//
//	var cfg Config
//	if err := config.LoadConfig("treeparse", &cfg); err != nil { ... }
//	if err := config.Validate(cfg); err != nil { ... }
package config
