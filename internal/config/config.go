package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"5000"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DSNURL     string `env:"DATABASE_URL" envDefault:""`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER" envDefault:""`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:"lottery"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBPath     string `env:"DB_PATH" envDefault:"data/lottery.db"` // sqlite only

	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@lottery.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

// Load parses the configuration from environment variables. Call after
// godotenv has populated the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
