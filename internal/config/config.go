package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN      string
	ServerPort string
	JWTSecret  string
	SeedDemo   bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:      os.Getenv("DB_DSN"),
		ServerPort: os.Getenv("SERVER_PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		SeedDemo:   os.Getenv("SEED_DEMO") == "1",
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	// DB_DSN may stay empty: the server then runs on the in-memory store

	return cfg
}
