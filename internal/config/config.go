package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey    = "API_PORT"
	dbConnEnvKey     = "DB_CONNECTION_URL"
	jwtSecretEnvKey  = "JWT_SECRET"
	sessionTTLEnvKey = "SESSION_TTL_HOURS"
	adminPassEnvKey  = "ADMIN_PASSWORD"
)

const defaultSessionTTL = 24 * time.Hour

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	SessionTTL      time.Duration
	AdminPassword   string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	sessionTTL := defaultSessionTTL
	if ttlStr, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		hours, err := strconv.Atoi(ttlStr)
		if err != nil || hours <= 0 {
			return App{}, fmt.Errorf("invalid %s value: %q", sessionTTLEnvKey, ttlStr)
		}
		sessionTTL = time.Duration(hours) * time.Hour
	}

	adminPass, ok := os.LookupEnv(adminPassEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, adminPassEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		SessionTTL:      sessionTTL,
		AdminPassword:   adminPass,
	}, nil
}
