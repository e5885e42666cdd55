package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Harness captures runner-level configuration.
type Harness struct {
	BaseURL       string
	Timeout       time.Duration
	WatchInterval time.Duration
	Addr          string
}

// Stub captures configuration for the standalone stub API server.
type Stub struct {
	Addr string
}

// FromEnv builds a Harness config from environment variables so main stays
// lean. A .env file in the working directory is honored when present.
func FromEnv() Harness {
	_ = godotenv.Load()

	timeout := 10 * time.Second
	if s := os.Getenv("WCG_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			timeout = d
		}
	}

	var watch time.Duration
	if s := os.Getenv("WCG_WATCH_INTERVAL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			watch = d
		}
	}

	addr := os.Getenv("VAXCHECK_ADDR")
	if addr == "" {
		addr = ":9090"
	}

	return Harness{
		BaseURL:       os.Getenv("WCG_URL"),
		Timeout:       timeout,
		WatchInterval: watch,
		Addr:          addr,
	}
}

// StubFromEnv builds the stub server config from environment variables.
func StubFromEnv() Stub {
	_ = godotenv.Load()

	addr := os.Getenv("MOCK_WCG_ADDR")
	if addr == "" {
		addr = ":8081"
	}
	return Stub{Addr: addr}
}
