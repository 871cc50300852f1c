// Package config loads the facet reconciler configuration.
//
// Values come from environment variables and an optional .env file loaded
// with godotenv; Viper maps SECTION_KEY variables onto nested keys. Every
// field's default is taken from its `default` struct tag.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and default platform
//   - Storage: S3/MinIO credentials and snapshot bucket
//   - Log: logging level and format
//   - Database: SDK registry connection (mysql or sqlite)
//   - Facet: snapshot prefix, defaults cache TTL, path handling, workers
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Facet.Prefix)
package config
