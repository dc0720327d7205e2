package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the ffc configuration read from the environment.
type Config struct {
	StoreDir    string `env:"FFC_STORE_DIR"`
	Currency    string `env:"FFC_CURRENCY" envDefault:"CNY"`
	LogLevel    string `env:"FFC_LOG_LEVEL" envDefault:"warn"`
	GeminiModel string `env:"FFC_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig reads the configuration from the environment, after loading a
// .env file from the current folder if there is one.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("cannot load .env file", "err", err)
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		slog.Warn("invalid configuration, using defaults", "err", err)
		cfg = Config{Currency: "CNY", LogLevel: "warn", GeminiModel: "gemini-2.5-flash"}
	}
	if cfg.StoreDir == "" {
		cfg.StoreDir = defaultStoreDir()
	}
	return cfg
}

// defaultStoreDir is ~/.ffc, or .ffc when there is no home folder.
func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ffc"
	}
	return filepath.Join(home, ".ffc")
}
