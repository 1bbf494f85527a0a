// Package config loads ssemock configuration from a config.yml file, an
// optional .env file and SSEMOCK_-prefixed environment variables.
//
// It uses Viper for file loading and unmarshalling and godotenv for .env
// files. Environment variables override file values: SSEMOCK_LOGGING_LEVEL
// sets logging.level.
//
// # Usage
//
//	var cfg MyConfig // embeds config.ServiceConfig
//	err := config.LoadConfig("ssemock", &cfg)
package config
