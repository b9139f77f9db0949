// Package config provides configuration management for the service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/sqlite connection details
//   - Storage: S3/MinIO credentials and bucket settings for report export
//   - Log: Logging level and format
//
// Defaults are declared as `default:"..."` struct tags next to each field
// and registered in Viper by reflection, so a field is never silently
// unbound from its environment variable.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
