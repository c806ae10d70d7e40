// Package config provides configuration loading and validation for the
// component loader.
//
// It uses Viper to load configuration from an optional config.yml and
// from environment variables, with a godotenv-loaded .env file in
// between. The component module reference is taken from the
// COMPONENT_MODULE environment variable; its absence is a fatal
// configuration error reported before any load attempt.
package config
