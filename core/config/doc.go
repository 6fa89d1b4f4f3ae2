// Package config provides configuration management for the demo server.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Default values live next to each field in a
// `default:"..."` struct tag and are registered by reflection, which also
// makes every key visible to AutomaticEnv.
//
// # Configuration Structure
//
//   - Server: listen address, base directory, browser launch, middleware toggles
//   - Log: logging level, format and output
//   - Storage: S3/MinIO credentials and bucket used by the publish command
//   - Database: optional page-hit store (sqlite or mysql)
//
// Nested keys map to environment variables by replacing dots with
// underscores: server.port is SERVER_PORT, database.enabled is DATABASE_ENABLED.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
