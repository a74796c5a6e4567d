// Package config handles noticias configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// ErrConfigExists is returned when refusing to overwrite a config file.
var ErrConfigExists = errors.New("config file already exists")

// Config represents noticias configuration.
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Search SearchConfig `toml:"search"`
	Keys   KeysConfig   `toml:"keys"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Enable mouse support (tab clicks, wheel scrolling)
	Mouse bool `toml:"mouse"`

	// Show the key help footer
	ShowHelp bool `toml:"show_help"`
}

// SearchConfig contains search field settings.
type SearchConfig struct {
	// Filter cards by the search query. Off by default: the search
	// field is display-only unless this is set.
	Filter bool `toml:"filter"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	NextTab string `toml:"next_tab"`
	PrevTab string `toml:"prev_tab"`
	Search  string `toml:"search"`
	Left    string `toml:"left"`
	Right   string `toml:"right"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Help    string `toml:"help"`
	Quit    string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:    "auto",
			Mouse:    true,
			ShowHelp: true,
		},
		Search: SearchConfig{
			Filter: false,
		},
		Keys: KeysConfig{
			NextTab: "tab",
			PrevTab: "shift+tab",
			Search:  "/",
			Left:    "left,h",
			Right:   "right,l",
			Up:      "up,k",
			Down:    "down,j",
			Help:    "?",
			Quit:    "q,ctrl+c",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/noticias/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "noticias", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "noticias", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "noticias", "config.toml")
	}
	return filepath.Join(configDir, "noticias", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so
	// unspecified fields keep their defaults.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// SaveTo writes cfg to path.
func SaveTo(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return writeLocked(path, data)
}

// CreateDefaultConfigFile writes a commented default config to path.
// An existing file is only replaced when force is set.
func CreateDefaultConfigFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}
	return writeLocked(path, []byte(generateDefaultConfigContent()))
}

// writeLocked replaces path atomically while holding an exclusive lock on
// path+".lock".
func writeLocked(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# Noticias Configuration\n\n")

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Enable mouse support (click tabs, scroll with the wheel)\n")
	fmt.Fprintf(&b, "mouse = %v\n", cfg.UI.Mouse)
	b.WriteString("# Show the key help footer\n")
	fmt.Fprintf(&b, "show_help = %v\n\n", cfg.UI.ShowHelp)

	b.WriteString("[search]\n")
	b.WriteString("# Filter cards by the search query (fuzzy match on titles).\n")
	b.WriteString("# When false the search field only records what is typed.\n")
	fmt.Fprintf(&b, "filter = %v\n\n", cfg.Search.Filter)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	b.WriteString("# Tabs can always be selected directly with 1, 2 and 3.\n")
	fmt.Fprintf(&b, "# next_tab = %q\n", cfg.Keys.NextTab)
	fmt.Fprintf(&b, "# prev_tab = %q\n", cfg.Keys.PrevTab)
	fmt.Fprintf(&b, "# search = %q\n", cfg.Keys.Search)
	fmt.Fprintf(&b, "# left = %q\n", cfg.Keys.Left)
	fmt.Fprintf(&b, "# right = %q\n", cfg.Keys.Right)
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	bindings := []struct {
		name string
		keys string
	}{
		{"next_tab", c.Keys.NextTab},
		{"prev_tab", c.Keys.PrevTab},
		{"search", c.Keys.Search},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"help", c.Keys.Help},
		{"quit", c.Keys.Quit},
	}

	reserved := map[string]bool{"1": true, "2": true, "3": true, "esc": true, "enter": true}
	owner := make(map[string]string)
	for _, b := range bindings {
		if b.keys == "" {
			continue
		}
		keys := ParseKeys(b.keys)
		if len(keys) == 0 {
			warnings = append(warnings, fmt.Sprintf("keys.%s has no usable keys: %q", b.name, b.keys))
			continue
		}
		for _, k := range keys {
			if reserved[k] {
				warnings = append(warnings, fmt.Sprintf("keys.%s: %q is reserved", b.name, k))
				continue
			}
			if prev, ok := owner[k]; ok {
				warnings = append(warnings, fmt.Sprintf("keys.%s: %q is already bound to keys.%s", b.name, k, prev))
				continue
			}
			owner[k] = b.name
		}
	}

	return warnings
}

// ParseKeys parses a comma-separated list of keys.
func ParseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
