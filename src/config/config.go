package config

import (
	"errors"
	"fmt"
	"gitlab.com/open-soft/go-crypto-dashboard/src/client"
	"gitlab.com/open-soft/go-crypto-dashboard/src/service"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	CoinGeckoDSN     string
	CoinGeckoApiKey  string
	CoinGeckoTimeout time.Duration
	Days             int64
	Currency         string
	OutputDir        string
	Viewer           string
	RedisDSN         string
	RedisPassword    string
	SnapshotTTL      time.Duration
	DatabaseDSN      string
}

func LoadConfig() (Config, error) {
	config := Config{
		CoinGeckoDSN:     getEnv("COINGECKO_DSN", client.CoinGeckoDSN),
		CoinGeckoApiKey:  os.Getenv("COINGECKO_API_KEY"),
		Currency:         strings.ToLower(getEnv("COINGECKO_CURRENCY", "usd")),
		OutputDir:        getEnv("DASHBOARD_OUTPUT_DIR", "."),
		Viewer:           getEnv("DASHBOARD_VIEWER", service.ViewerAuto),
		RedisDSN:         os.Getenv("REDIS_DSN"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		CoinGeckoTimeout: 20 * time.Second,
		SnapshotTTL:      24 * time.Hour,
		Days:             30,
	}

	var err error

	if value := os.Getenv("COINGECKO_DAYS"); value != "" {
		config.Days, err = strconv.ParseInt(value, 10, 64)
		if err != nil || config.Days <= 0 {
			return config, errors.New(fmt.Sprintf("COINGECKO_DAYS must be a positive integer, '%s' given", value))
		}
	}

	if value := os.Getenv("COINGECKO_TIMEOUT"); value != "" {
		config.CoinGeckoTimeout, err = time.ParseDuration(value)
		if err != nil || config.CoinGeckoTimeout < 0 {
			return config, errors.New(fmt.Sprintf("COINGECKO_TIMEOUT must be a duration, '%s' given", value))
		}
	}

	if value := os.Getenv("SNAPSHOT_TTL"); value != "" {
		config.SnapshotTTL, err = time.ParseDuration(value)
		if err != nil || config.SnapshotTTL < 0 {
			return config, errors.New(fmt.Sprintf("SNAPSHOT_TTL must be a duration, '%s' given", value))
		}
	}

	return config, nil
}

func getEnv(name string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}

	return value
}
