// Package config loads environment variables into typed structs using generics.
// Each configuration type is parsed once and cached for subsequent calls.
//
// A .env file in the working directory is loaded on first use, and fields are
// parsed by the caarlos0/env library:
//
//	import "github.com/dmitrymomot/eradate/core/config"
//
//	type ServerConfig struct {
//		Addr     string `env:"ERADATE_HTTP_ADDR" envDefault:":8080"`
//		EraTable string `env:"ERADATE_ERA_TABLE"`
//		Strict   bool   `env:"ERADATE_STRICT"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	// Or panic on failure during startup
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// The cache is keyed by type. A second Load of the same type returns the first
// result even if the environment changed in between; different types are parsed
// independently.
package config
