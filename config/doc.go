// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The file location can be overridden with the TRANSIT_CATALOGUE_CONFIG
// environment variable, which may itself come from a .env file.
package config
