package config

import (
	"fmt"
	"os"
)

type AppEnv struct {
	LogLvl string

	Host string
	Port string

	DBDriver string
	DBPath   string

	PgHost     string
	PgPort     string
	PgUser     string
	PgPassword string
	PgDbName   string
	SSLMode    string
	TimeZone   string
}

func GetEnvironment() (env AppEnv, err error) {
	env = AppEnv{
		LogLvl:     getEnv("LOG_LEVEL", "debug"),
		Host:       getEnv("HOST", "0.0.0.0"),
		Port:       getEnv("PORT", "5000"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "db.sqlite"),
		PgHost:     getEnv("POSTGRES_HOST", ""),
		PgPort:     getEnv("POSTGRES_PORT", "5432"),
		PgUser:     getEnv("POSTGRES_USER", ""),
		PgPassword: getEnv("POSTGRES_PASSWORD", ""),
		PgDbName:   getEnv("POSTGRES_DB", ""),
		SSLMode:    getEnv("POSTGRES_SSL_MODE", "disable"),
		TimeZone:   getEnv("POSTGRES_TIMEZONE", "UTC"),
	}

	switch env.DBDriver {
	case "sqlite":
		if env.DBPath == "" {
			return env, fmt.Errorf("incorrect environment params: DB_PATH is empty")
		}
	case "postgres":
		if env.PgHost == "" || env.PgPort == "" || env.PgUser == "" ||
			env.PgPassword == "" || env.PgDbName == "" {
			return env, fmt.Errorf("incorrect environment params: postgres settings are incomplete")
		}
	default:
		return env, fmt.Errorf("incorrect environment params: unknown DB_DRIVER %q", env.DBDriver)
	}

	return env, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
