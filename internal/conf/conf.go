package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
)

// Environment variables read on top of the config file
const (
	EnvConfig   = "GPUCHECK_CONFIG"    // Config file path
	EnvLocale   = "GPUCHECK_LOCALE"    // Overrides report.locale
	EnvLogLevel = "GPUCHECK_LOG_LEVEL" // Overrides log.level
	EnvDebug    = "GPUCHECK_DEBUG"     // Overrides log.debug
)

var (
	Path string       // Config path
	mu   sync.RWMutex // Protects access to Conf
	Conf = Default()
)

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Log: Log{
			Level: "error",
		},
		Report: Report{
			Locale: "en",
		},
	}
}

// DefaultPath returns the config location, honoring GPUCHECK_CONFIG
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "gpucheck", "config.toml")
}

// LoadConfig Set Path and load config into memory
// A missing file leaves the defaults in place
// Env overrides apply even when the file cannot be decoded
func LoadConfig(path string) error {
	mu.Lock()
	Path = path
	mu.Unlock()

	err := Update()
	applyEnv()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// Update reads the config file and loads it into the global Conf variable
func Update() (err error) {
	mu.Lock()
	defer mu.Unlock()

	if _, err = os.Stat(Path); err != nil {
		return err
	}
	next := Default()
	_, err = toml.DecodeFile(Path, &next)
	if err != nil {
		return fmt.Errorf("failed to update global config %w", err)
	}
	Conf = next
	return nil
}

// applyEnv overlays GPUCHECK_* variables on top of the file values
func applyEnv() {
	mu.Lock()
	defer mu.Unlock()

	if v, ok := os.LookupEnv(EnvLocale); ok && v != "" {
		Conf.Report.Locale = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		Conf.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		Conf.Log.Debug = cast.ToBool(strings.TrimSpace(v))
	}
}

// Read returns a copy of the current configuration
func Read() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Conf
}

// GetLog returns the Log config in a thread-safe manner
func GetLog() Log {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Log
}

// GetReport returns the Report config in a thread-safe manner
func GetReport() Report {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Report
}
