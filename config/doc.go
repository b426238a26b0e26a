// Package config provides type-safe environment variable loading with
// per-type caching.
//
// Configuration structs declare their environment mapping with env struct
// tags, parsed by the caarlos0/env library. A .env file is loaded
// automatically on first use.
//
//	var cfg pgdb.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per process and cached, so
// repeated loads of the same type are cheap and always agree.
package config
