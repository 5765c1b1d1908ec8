package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	appDirName = ".servicenote"
	dbFileName = "servicenote.db"
	envFile    = ".env"

	EnvDBPath   = "SERVICENOTE_DB_PATH"
	EnvLogLevel = "SERVICENOTE_LOG_LEVEL"
	EnvPioneer  = "SERVICENOTE_PIONEER"
)

// Config holds the settings resolved at startup
type Config struct {
	DataDir  string
	DBPath   string
	LogLevel log.Level
	Pioneer  bool // share the long report form by default
}

// Load resolves the configuration. Values come from, in order of precedence:
// the process environment, DataDir/.env, then defaults. Command line flags
// are applied by the caller on top of the result.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadFrom(filepath.Join(homeDir, appDirName))
}

// LoadFrom resolves the configuration using dataDir as the app directory
func LoadFrom(dataDir string) (*Config, error) {
	// godotenv.Load never overrides variables already set in the environment
	if err := godotenv.Load(filepath.Join(dataDir, envFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, dbFileName),
		LogLevel: log.WarnLevel,
	}

	if path := strings.TrimSpace(os.Getenv(EnvDBPath)); path != "" {
		cfg.DBPath = path
	}

	if raw := strings.TrimSpace(os.Getenv(EnvLogLevel)); raw != "" {
		level, err := log.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, raw, err)
		}
		cfg.LogLevel = level
	}

	if raw := strings.TrimSpace(os.Getenv(EnvPioneer)); raw != "" {
		pioneer, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvPioneer, raw, err)
		}
		cfg.Pioneer = pioneer
	}

	return cfg, nil
}
