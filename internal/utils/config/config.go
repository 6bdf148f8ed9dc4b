package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/skillswap/swap-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Jobs        JobsConfig
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

type JobsConfig struct {
	// Cron expression for the pending-request expiry sweeper.
	ExpirySweepSchedule string

	// Optional heartbeat URL pinged after every successful sweep.
	UptimeWebhookURL string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Loads the per-environment dotenv file; existing env variables win.
	godotenv.Load(".env." + env)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	expirySchedule := os.Getenv("EXPIRY_SWEEP_SCHEDULE")
	if expirySchedule == "" {
		expirySchedule = "@hourly"
	}

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			Port:           port,
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Jobs: JobsConfig{
			ExpirySweepSchedule: expirySchedule,
			UptimeWebhookURL:    os.Getenv("UPTIME_WEBHOOK_URL"),
		},
	}
}
