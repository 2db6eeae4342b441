package conf

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

var (
	Path string       // Config path
	mu   sync.RWMutex // Protects access to Conf
	Conf = Config{    // Default values
		Sources: Sources{
			OSReleasePath: "/etc/os-release",
			MemInfoPath:   "/proc/meminfo",
			UptimePath:    "/proc/uptime",
		},
		Log: Log{
			Level: "info",
		},
	}
)

// LoadConfig Set Path and load config into memory
// Run this at start
func LoadConfig(path string) error {
	godotenv.Load()

	Path = path
	err := Update()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f, err := os.OpenFile(path, os.O_CREATE, 0644)
			if err != nil {
				return fmt.Errorf("failed to load config")
			}
			f.Close()
			applyEnv()
			return nil
		}
		return fmt.Errorf("failed to load config")
	}

	applyEnv()
	return nil
}

// Update reads the config file and loads it into the global Conf variable
func Update() (err error) {
	mu.Lock()
	defer mu.Unlock()

	if _, err = os.Stat(Path); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	_, err = toml.DecodeFile(Path, &Conf)
	if err != nil {
		return fmt.Errorf("failed to update global config %w", err)
	}
	return nil
}

// applyEnv layers the environment over the loaded file: LXINFO_* variables
// override their file counterparts, while SHELL only fills an empty Shell.
func applyEnv() {
	mu.Lock()
	defer mu.Unlock()

	if Conf.Shell == "" {
		Conf.Shell = os.Getenv("SHELL")
	}
	if v := os.Getenv("LXINFO_LOG_LEVEL"); v != "" {
		Conf.Log.Level = v
	}
	if v := os.Getenv("LXINFO_LOG_FILE"); v != "" {
		Conf.Log.File = v
	}
	if v := os.Getenv("LXINFO_LOG_DEV"); v != "" {
		Conf.Log.Dev = cast.ToBool(v)
	}
}

// GetShell returns the configured login shell path in a thread-safe manner
func GetShell() string {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Shell
}

// GetSources returns the Sources config in a thread-safe manner
func GetSources() Sources {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Sources
}

// GetLog returns the Log config in a thread-safe manner
func GetLog() Log {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Log
}
