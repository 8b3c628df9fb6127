// Package config loads typed configuration from environment variables.
//
// Structs are described with github.com/caarlos0/env/v11 tags; a .env file in
// the working directory is read once through github.com/joho/godotenv before
// the first parse.
//
//	type RedisConfig struct {
//		URL string `env:"REDIS_URL,required"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load caches the parsed value per type, so every package asking for the same
// struct sees the same values for the life of the process. Parse skips the
// cache for values that must follow the environment, e.g. settings that are
// reloaded at runtime. Reset clears the cache in tests.
package config
