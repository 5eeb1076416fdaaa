package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ramsha-Haris/table/internal/branding"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
	envFile  = ".env"
)

// Config keys.
const (
	KeyAPIURL        = "api_url"
	KeyTimeout       = "timeout"
	KeyRedirectDelay = "redirect_delay"
	KeyDebounce      = "debounce"
	KeyLogLevel      = "log_level"
	KeyTab           = "tab"
	KeySlotStart     = "slots.start"
	KeySlotEnd       = "slots.end"
	KeySlotInterval  = "slots.interval"
)

// Settings is the typed view of the resolved configuration.
type Settings struct {
	APIURL        string
	Timeout       time.Duration
	RedirectDelay time.Duration
	Debounce      time.Duration
	LogLevel      string
	Tab           string
	SlotStart     string
	SlotEnd       string
	SlotInterval  int
}

// Dir returns the path to the config directory (~/.tablebook/).
// TABLEBOOK_HOME overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.tablebook/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// .env files in the working directory and the config directory are loaded
// into the process environment first; variables already set win.
func Load() {
	loadDotEnv(envFile, filepath.Join(Dir(), envFile))

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault(KeyAPIURL, branding.APIURL())
	viper.SetDefault(KeyTimeout, 10*time.Second)
	viper.SetDefault(KeyRedirectDelay, 1500*time.Millisecond)
	viper.SetDefault(KeyDebounce, 300*time.Millisecond)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyTab, "default")
	viper.SetDefault(KeySlotStart, "10:00")
	viper.SetDefault(KeySlotEnd, "22:00")
	viper.SetDefault(KeySlotInterval, 30)
}

func loadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		APIURL:        strings.TrimRight(viper.GetString(KeyAPIURL), "/"),
		Timeout:       viper.GetDuration(KeyTimeout),
		RedirectDelay: viper.GetDuration(KeyRedirectDelay),
		Debounce:      viper.GetDuration(KeyDebounce),
		LogLevel:      viper.GetString(KeyLogLevel),
		Tab:           viper.GetString(KeyTab),
		SlotStart:     viper.GetString(KeySlotStart),
		SlotEnd:       viper.GetString(KeySlotEnd),
		SlotInterval:  viper.GetInt(KeySlotInterval),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
