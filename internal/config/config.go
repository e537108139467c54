package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port string `envconfig:"PORT" default:"3000"`

	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	DBUser     string `envconfig:"DB_USER" default:"ppuser"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"ppgarageGastos"`

	UploadDir    string `envconfig:"UPLOAD_DIR" default:"uploads"`
	TemplateGlob string `envconfig:"TEMPLATE_GLOB" default:"web/templates/*.html"`
}

// Load reads an optional .env file and parses the environment into a Config.
// A missing .env is not an error; explicit environment always wins.
func Load() (*Config, error) {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				log.Printf("Loaded environment from %s", p)
			}
			break
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
