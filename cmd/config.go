package cmd

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings read from the environment.
type Config struct {
	StoreFile      string  `env:"MKT_STORE_FILE" env-default:"users.json" env-description:"Path to the marketplace store file"`
	DefaultBalance float64 `env:"MKT_DEFAULT_BALANCE" env-default:"100" env-description:"Balance granted to new users created without -balance"`
}

// loadConfig reads the environment. Unreadable values fall back to defaults
// with a warning; a CLI run should not die on a malformed MKT_* variable.
func loadConfig() Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Printf("warning, could not read environment config: %v", err)
		return Config{StoreFile: "users.json", DefaultBalance: 100}
	}
	return cfg
}
