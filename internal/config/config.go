package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Timezone   string

	SessionSecret string
	ServerPort    string
	Env           string // "development" | "production"
}

// Load lee el entorno (y un .env si existe). Los defaults sólo sirven para
// desarrollo local: en producción el secreto de sesión y la contraseña de la
// BD tienen que venir del entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "gestor_radiografias"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "sistema_gestion_radiografias"),
		Timezone:      getenv("TIMEZONE", "America/Tijuana"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		ServerPort:    getenv("PORT", "3000"),
		Env:           getenv("APP_ENV", "development"),
	}

	if cfg.Produccion() {
		if cfg.SessionSecret == "" {
			return nil, fmt.Errorf("SESSION_SECRET es obligatorio en producción")
		}
		if cfg.DBPassword == "" {
			return nil, fmt.Errorf("DB_PASSWORD es obligatorio en producción")
		}
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "clave_super_secreta"
	}

	return cfg, nil
}

func (c *Config) Produccion() bool { return c.Env == "production" }

// DSN arma la cadena de conexión de postgres.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.Timezone,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
