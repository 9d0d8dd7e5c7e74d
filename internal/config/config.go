package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"swmterm/internal/errors"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SWMTERM_"

// Config represents the application configuration structure.
// It defines where content comes from, how the terminal looks and how the
// HTTP server behaves.
type Config struct {
	Index struct {
		Path   string `yaml:"path"`    // Local terminal-index.json
		URL    string `yaml:"url"`     // Remote index, takes precedence over Path
		Watch  bool   `yaml:"watch"`   // Reload when Path changes
		QAPath string `yaml:"qa_path"` // Canned answers file (JSON or YAML)
	} `yaml:"index"`
	Prompt struct {
		User string `yaml:"user"` // Prompt user name
		Host string `yaml:"host"` // Prompt host name
	} `yaml:"prompt"`
	Profile struct {
		Image string `yaml:"image"` // Image shown by whoami
	} `yaml:"profile"`
	Boot struct {
		Enabled bool    `yaml:"enabled"` // Play the boot sequence on first open
		Speed   float64 `yaml:"speed"`   // Playback speed multiplier
	} `yaml:"boot"`
	Server struct {
		Addr        string `yaml:"addr"`         // Listen address
		SessionTTL  string `yaml:"session_ttl"`  // Idle session lifetime, e.g. "1h"
		CORSOrigins string `yaml:"cors_origins"` // Comma-separated allowed origins
	} `yaml:"server"`
	Log struct {
		File  string `yaml:"file"`  // Log file; TUI mode always logs to a file
		Debug bool   `yaml:"debug"` // Enable debug logging
	} `yaml:"log"`
	Theme Theme `yaml:"theme"`
}

// Theme holds the terminal colours as ANSI 256 codes.
type Theme struct {
	Name     string `yaml:"name"`     // Theme name (default, dark, light, etc.)
	Primary  string `yaml:"primary"`  // Primary color for branding
	Success  string `yaml:"success"`  // Success message color
	Warning  string `yaml:"warning"`  // Warning message color
	Error    string `yaml:"error"`    // Error message color
	Info     string `yaml:"info"`     // Informational message color
	Emphasis string `yaml:"emphasis"` // Emphasis color for text that should stand out
	Border   string `yaml:"border"`   // Border color for frames
	Muted    string `yaml:"muted"`    // Boot lines and banners
}

// Dir returns the configuration directory (~/.config/swmterm).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "swmterm"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/swmterm/config.yaml).
func LoadConfig() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(dir, "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, err)
	}

	// Decoding over the defaults keeps them for keys the file leaves out.
	// Theme colours start empty so a named theme fills whatever the file
	// does not set itself.
	cfg.Theme = Theme{Name: "default"}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, err)
	}
	cfg.fillTheme()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// LoadEnv applies a .env file (if present) and SWMTERM_* environment
// variables on top of cfg. Variables already set in the environment win
// over the .env file.
func LoadEnv(cfg *Config, dotenvPaths ...string) error {
	for _, p := range dotenvPaths {
		if err := godotenv.Load(p); err != nil && !os.IsNotExist(err) {
			return errors.NewConfigError("error loading env file", p, err)
		}
	}

	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewConfigError("invalid boolean", EnvPrefix+key, err)
		}
		*dst = b
		return nil
	}

	str("INDEX_PATH", &cfg.Index.Path)
	str("INDEX_URL", &cfg.Index.URL)
	str("QA_PATH", &cfg.Index.QAPath)
	str("PROMPT_USER", &cfg.Prompt.User)
	str("PROMPT_HOST", &cfg.Prompt.Host)
	str("PROFILE_IMAGE", &cfg.Profile.Image)
	str("SERVER_ADDR", &cfg.Server.Addr)
	str("SESSION_TTL", &cfg.Server.SessionTTL)
	str("CORS_ORIGINS", &cfg.Server.CORSOrigins)
	str("LOG_FILE", &cfg.Log.File)

	for key, dst := range map[string]*bool{
		"INDEX_WATCH":  &cfg.Index.Watch,
		"BOOT_ENABLED": &cfg.Boot.Enabled,
		"DEBUG":        &cfg.Log.Debug,
	} {
		if err := boolean(key, dst); err != nil {
			return err
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "BOOT_SPEED"); ok {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.NewConfigError("invalid number", EnvPrefix+"BOOT_SPEED", err)
		}
		cfg.Boot.Speed = speed
	}

	if v, ok := os.LookupEnv(EnvPrefix + "THEME"); ok {
		cfg.ApplyTheme(v)
	}

	return cfg.Validate()
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Index.Path = "terminal-index.json"
	cfg.Index.Watch = false

	cfg.Prompt.User = "visitor"
	cfg.Prompt.Host = "swm.cc"

	cfg.Profile.Image = "/images/stephen-mccullough.jpg"

	cfg.Boot.Enabled = true
	cfg.Boot.Speed = 1

	cfg.Server.Addr = ":8080"
	cfg.Server.SessionTTL = "1h"
	cfg.Server.CORSOrigins = "*"

	if dir, err := Dir(); err == nil {
		cfg.Log.File = filepath.Join(dir, "swmterm.log")
	}

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", nil)
	}

	if c.Index.Path == "" && c.Index.URL == "" {
		return errors.NewConfigError("an index path or url is required", "index", nil)
	}
	if c.Index.URL != "" && !strings.HasPrefix(c.Index.URL, "http://") && !strings.HasPrefix(c.Index.URL, "https://") {
		return errors.NewConfigError("index url must be http or https", "index.url", nil)
	}
	if c.Index.Watch && (c.Index.URL != "" || c.Index.Path == "") {
		return errors.NewConfigError("watching requires a local index path", "index.watch", nil)
	}

	if c.Prompt.User == "" || c.Prompt.Host == "" {
		return errors.NewConfigError("prompt user and host are required", "prompt", nil)
	}

	if c.Boot.Speed <= 0 {
		return errors.NewConfigError("boot speed must be > 0", "boot.speed", nil)
	}

	if _, err := c.SessionTTL(); err != nil {
		return errors.NewConfigError("invalid duration", "server.session_ttl", err)
	}

	if c.Server.Addr == "" {
		return errors.NewConfigError("listen address is required", "server.addr", nil)
	}

	return nil
}

// SessionTTL parses Server.SessionTTL.
func (c *Config) SessionTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("session ttl must be positive")
	}
	return d, nil
}

// IndexLocation is where content is loaded from: the URL if set, otherwise
// the local path.
func (c *Config) IndexLocation() string {
	if c.Index.URL != "" {
		return c.Index.URL
	}
	return c.Index.Path
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Index.Path = "testdata/terminal-index.json"
	cfg.Boot.Enabled = false
	cfg.Log.File = ""
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light Pink
			"border":   "213", // Purple
			"muted":    "245", // Grey
		},
		"dark": {
			"primary":  "105", // Dark Blue
			"success":  "78",  // Dark Green
			"warning":  "214", // Dark Yellow
			"error":    "160", // Dark Red
			"info":     "33",  // Dark Blue
			"emphasis": "147", // Light Blue
			"border":   "105", // Dark Blue
			"muted":    "240", // Dark Grey
		},
		"light": {
			"primary":  "135", // Light Purple
			"success":  "150", // Light Green
			"warning":  "222", // Light Yellow
			"error":    "210", // Light Red
			"info":     "117", // Light Blue
			"emphasis": "219", // Very Light Pink
			"border":   "135", // Light Purple
			"muted":    "250", // Light Grey
		},
		"monochrome": {
			"primary":  "245", // Light Grey
			"success":  "252", // White
			"warning":  "241", // Medium Grey
			"error":    "232", // Black
			"info":     "248", // Grey
			"emphasis": "255", // Bright White
			"border":   "245", // Light Grey
			"muted":    "241", // Medium Grey
		},
		"phosphor": {
			"primary":  "46",  // Green
			"success":  "82",  // Bright Green
			"warning":  "190", // Yellow-Green
			"error":    "196", // Red
			"info":     "40",  // Green
			"emphasis": "118", // Light Green
			"border":   "34",  // Dark Green
			"muted":    "28",  // Dim Green
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)
	if _, ok := themeSet[name]; !ok {
		name = "default"
	}

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
	c.Theme.Muted = theme["muted"]
}

// fillTheme sets unset colours from the named theme.
func (c *Config) fillTheme() {
	theme := GetTheme(c.Theme.Name)
	if _, ok := themeSet[c.Theme.Name]; !ok {
		c.Theme.Name = "default"
	}
	for key, dst := range map[string]*string{
		"primary":  &c.Theme.Primary,
		"success":  &c.Theme.Success,
		"warning":  &c.Theme.Warning,
		"error":    &c.Theme.Error,
		"info":     &c.Theme.Info,
		"emphasis": &c.Theme.Emphasis,
		"border":   &c.Theme.Border,
		"muted":    &c.Theme.Muted,
	} {
		if *dst == "" {
			*dst = theme[key]
		}
	}
}

var themeSet = map[string]struct{}{
	"default": {}, "dark": {}, "light": {}, "monochrome": {}, "phosphor": {},
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "phosphor"}
}
