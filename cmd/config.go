package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config carries everything the composition root needs to assemble the
// application. Values come from the environment; see ReadConfig.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	ViaCEPBaseURL string
	ViaCEPTimeout time.Duration

	// KafkaBrokers is optional; when empty no events are published.
	KafkaBrokers []string

	OverdueCheckSpec string
}

// ReadConfig builds a Config from environment variables, applying defaults
// for everything except the database credentials and the JWT secret.
func ReadConfig() (Config, error) {
	config := Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		ViaCEPBaseURL:    envOrDefault("VIACEP_BASE_URL", "https://viacep.com.br"),
		OverdueCheckSpec: os.Getenv("OVERDUE_CHECK_CRON"),
	}

	for name, value := range map[string]string{
		"DB_HOST":     config.DBHost,
		"DB_USER":     config.DBUser,
		"DB_PASSWORD": config.DBPassword,
		"DB_NAME":     config.DBName,
		"JWT_SECRET":  config.JWTSecret,
	} {
		if value == "" {
			return Config{}, fmt.Errorf("required environment variable %s is not set", name)
		}
	}

	jwtTTL, err := durationOrDefault("JWT_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	config.JWTTTL = jwtTTL

	viaCEPTimeout, err := durationOrDefault("VIACEP_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	config.ViaCEPTimeout = viaCEPTimeout

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, broker := range strings.Split(brokers, ",") {
			if trimmed := strings.TrimSpace(broker); trimmed != "" {
				config.KafkaBrokers = append(config.KafkaBrokers, trimmed)
			}
		}
	}

	return config, nil
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func durationOrDefault(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s is not a duration: %w", name, err)
	}
	return value, nil
}
