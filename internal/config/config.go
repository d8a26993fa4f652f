package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	TCP       TCP       `yaml:"tcp"`
	WebSocket WebSocket `yaml:"websocket"`
}

// TCP is the listen endpoint for plain-socket clients.
type TCP struct {
	Host string `yaml:"host" env:"TCP_HOST" env-default:"127.0.0.1"`
	Port string `yaml:"port" env:"TCP_PORT" env-default:"65432"`
}

// WebSocket is the listen port for browser clients.
type WebSocket struct {
	Port string `yaml:"port" env:"WEBSOCKET_PORT" env-default:"8080"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *TCP) GetAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
