package config

import "os"

type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string
	AmqpURL     string
	JWTSecret   string
}

func Load() Config {
	addr := os.Getenv("STORE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		AmqpURL:     os.Getenv("AMQP_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
}
