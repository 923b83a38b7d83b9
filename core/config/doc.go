// Package config provides configuration management for the ID Reserve
// service.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from `default` struct tags on the
// per-package config structs.
//
// # Configuration Structure
//
// The Config struct aggregates subsections owned by their consumers:
//   - Server: HTTP port and JWT secret
//   - Database: MySQL connection details
//   - Log: logging level and format
//   - Cache: Redis author cache settings
//   - Queue: RabbitMQ compaction queue settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
