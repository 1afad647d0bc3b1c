package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type AppConfig struct {
	App struct {
		Port string `env:"APP_PORT" envDefault:"8080" yaml:"port"`
	} `yaml:"app"`
	Database struct {
		URL      string `env:"DATABASE_URL" yaml:"url"`
		Host     string `env:"DB_HOST" yaml:"host"`
		Port     string `env:"DB_PORT" envDefault:"5432" yaml:"port"`
		User     string `env:"DB_USER" envDefault:"postgres" yaml:"user"`
		Password string `env:"DB_PASSWORD" yaml:"password"`
		Name     string `env:"DB_NAME" yaml:"name"`
	} `yaml:"database"`
}

// ErrNoDatabase is returned when neither DATABASE_URL nor the discrete DB_*
// settings describe a database to connect to. The server refuses to start.
var ErrNoDatabase = errors.New("config: DATABASE_URL environment variable not set")

// DSN returns the lib/pq connection string. DATABASE_URL wins when set;
// otherwise the DSN is assembled from the discrete settings.
func (a AppConfig) DSN() (string, error) {
	if a.Database.URL != "" {
		return a.Database.URL, nil
	}
	if a.Database.Host == "" || a.Database.Name == "" {
		return "", ErrNoDatabase
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		a.Database.Host, a.Database.Port, a.Database.User, a.Database.Password, a.Database.Name), nil
}

// Load reads .env, parses environment variables, then overlays the optional
// config.yml / config.yaml files.
func Load() (AppConfig, error) {
	_ = godotenv.Load()
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if b, err := os.ReadFile("config.yml"); err == nil {
		_ = yaml.Unmarshal(b, &cfg)
	}
	if b, err := os.ReadFile("config.yaml"); err == nil {
		_ = yaml.Unmarshal(b, &cfg)
	}
	return cfg, nil
}
