package config

// DefaultKey names the entry used when no target in a value table matches.
const DefaultKey = "default"

// ValueTable maps target names (plus DefaultKey) to the value for that target
type ValueTable map[string]string

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"` // Serve immediately instead of showing the menu
	Port    string `json:"port" mapstructure:"port"`
}

// AppConfig represents the complete application configuration
type AppConfig struct {
	LogLevel string                `json:"log_level" mapstructure:"log_level"`
	Values   map[string]ValueTable `json:"values" mapstructure:"values"`
	Server   ServerConfig          `json:"server" mapstructure:"server"`
}

// GetDefaultConfig returns a configuration with sensible defaults
func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		LogLevel: "info",
		Values: map[string]ValueTable{
			"greeting": {
				DefaultKey: "Hello from an unknown platform!",
				"ios":      "Hello from iOS!",
				"android":  "Hello from Android!",
				"windows":  "Hello from Windows!",
				"macos":    "Hello from macOS!",
				"linux":    "Hello from Linux!",
				"wasm":     "Hello from WebAssembly!",
			},
			"path_separator": {
				DefaultKey: "/",
				"windows":  `\`,
			},
		},
		Server: ServerConfig{
			Enabled: false,
			Port:    "8080",
		},
	}
}
