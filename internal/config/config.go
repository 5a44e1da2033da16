package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/simplyzetax/platform"
	"github.com/spf13/viper"
)

var Config *AppConfig

var configPath = "platform.json"

// Load reads the configuration from the default path or creates a default config
func Load() error {
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration from path, writing the defaults there if
// no file exists yet
func LoadFrom(path string) error {
	viper.Reset()
	configPath = path
	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	// Try to read existing config
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}

		log.Info("No existing config found, creating default configuration...")

		Config = GetDefaultConfig()
		if err := Save(); err != nil {
			return fmt.Errorf("failed to create default config file: %w", err)
		}

		setLogLevel(Config.LogLevel)
		log.Infof("Default configuration created in %s", path)
		return nil
	}

	Config = &AppConfig{}
	if err := viper.Unmarshal(Config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(Config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setLogLevel(Config.LogLevel)
	log.Debug("Configuration loaded successfully", "path", path)
	return nil
}

// Save writes the current configuration to file. A fresh viper instance is
// used so keys removed from Config do not survive from the file last read.
func Save() error {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	values := make(map[string]any, len(Config.Values))
	for key, table := range Config.Values {
		entries := make(map[string]any, len(table))
		for target, value := range table {
			entries[target] = value
		}
		values[key] = entries
	}

	v.Set("log_level", Config.LogLevel)
	v.Set("values", values)
	v.Set("server.enabled", Config.Server.Enabled)
	v.Set("server.port", Config.Server.Port)

	return v.WriteConfig()
}

// backupAndSave keeps a copy of the file on disk before overwriting it
func backupAndSave() error {
	if _, err := os.Stat(configPath); err == nil {
		if err := BackupConfig(); err != nil {
			return err
		}
	}
	return Save()
}

// SetValue sets the value a key takes on a target and saves the configuration.
// The target may be DefaultKey.
func SetValue(key, target, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return fmt.Errorf("value key is required")
	}
	if strings.Contains(key, ".") {
		return fmt.Errorf("value key %q must not contain '.'", key)
	}

	name, err := canonicalTarget(target)
	if err != nil {
		return err
	}

	table, ok := Config.Values[key]
	if !ok {
		if name != DefaultKey {
			return fmt.Errorf("value %q has no default; set the default first", key)
		}
		table = ValueTable{}
		if Config.Values == nil {
			Config.Values = map[string]ValueTable{}
		}
		Config.Values[key] = table
	}

	// Drop aliases spelling the same target, e.g. "darwin" when setting "macos"
	for existing := range table {
		if existing == DefaultKey || existing == name {
			continue
		}
		if t, ok := platform.Lookup(existing); ok && t.Name == name {
			delete(table, existing)
		}
	}

	table[name] = value
	return backupAndSave()
}

// RemoveValue removes a key, or a single target override when target is set
func RemoveValue(key, target string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	table, ok := Config.Values[key]
	if !ok {
		return fmt.Errorf("unknown value: %s", key)
	}

	if target == "" {
		delete(Config.Values, key)
		return backupAndSave()
	}

	name, err := canonicalTarget(target)
	if err != nil {
		return err
	}
	if name == DefaultKey {
		return fmt.Errorf("cannot remove the default of %q; remove the value instead", key)
	}
	if _, ok := table[name]; !ok {
		return fmt.Errorf("value %q has no override for %s", key, name)
	}

	delete(table, name)
	return backupAndSave()
}

// Keys returns the configured value keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(Config.Values))
	for key := range Config.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func canonicalTarget(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == DefaultKey {
		return DefaultKey, nil
	}

	t, ok := platform.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown target: %s", name)
	}
	return t.Name, nil
}

// validate checks if the configuration is valid
func validate(cfg *AppConfig) error {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	for key, table := range cfg.Values {
		if _, ok := table[DefaultKey]; !ok {
			return fmt.Errorf("value %q: %s is required", key, DefaultKey)
		}
		seen := make(map[string]string, len(table))
		for target := range table {
			if target == DefaultKey {
				continue
			}
			t, ok := platform.Lookup(target)
			if !ok {
				return fmt.Errorf("value %q: unknown target %q", key, target)
			}
			if other, dup := seen[t.Name]; dup {
				return fmt.Errorf("value %q: %q and %q both set %s", key, other, target, t.Name)
			}
			seen[t.Name] = target
		}
	}

	return nil
}

// setLogLevel configures the log level
func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// Reload reloads the configuration from file
func Reload() error {
	return LoadFrom(configPath)
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() string {
	return configPath
}

// BackupConfig creates a backup of the current configuration
func BackupConfig() error {
	path := GetConfigPath()
	backupPath := path + ".backup"

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	log.Debug("Backed up configuration before editing", "from", path, "to", backupPath)
	return nil
}
