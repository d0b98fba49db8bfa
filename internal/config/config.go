package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env        string `envconfig:"ENV" default:"local"`
	ServerPort int    `envconfig:"SERVER_PORT" default:"8080"`
	MongoURI   string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017/"`
	MongoDB    string `envconfig:"MONGO_DB" default:"barter_app"`
	JWTSecret  string `envconfig:"JWT_SECRET" required:"true"`
}

// Load fills the config from environment variables.
func Load(cfg *Config) error {
	return envconfig.Process("", cfg)
}
