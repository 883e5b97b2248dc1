// Package config provides configuration loading and validation for the xhire service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when neither the environment nor a config file sets a value.
const (
	DefaultPort      = 8090
	DefaultProxyHost = "localhost"
	DefaultProxyPort = 8080
)

// Config holds the recognized configuration surface. Absence of a credential
// deterministically disables the corresponding adapter.
type Config struct {
	// Credentials
	TwitterBearerToken string `json:"twitter_bearer_token,omitempty"`
	GeminiAPIKey       string `json:"gemini_api_key,omitempty"`
	GeminiModel        string `json:"gemini_model,omitempty"`
	XhireAPIEndpoint   string `json:"xhire_api_endpoint,omitempty" validate:"omitempty,url"`

	// UseOwnerKeys indicates the bundled default credentials are in use.
	UseOwnerKeys bool `json:"use_owner_keys,omitempty"`

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// Development proxy
	ProxyHost string `json:"proxy_host,omitempty"`
	ProxyPort int    `json:"proxy_port,omitempty" validate:"omitempty,min=1,max=65535"`

	// BookmarksPath is the durable slot holding the bookmark set.
	BookmarksPath string `json:"bookmarks_path,omitempty"`
}

// FromEnv builds a Config from environment variables. Call godotenv.Load
// beforehand if a .env file should participate.
func FromEnv() *Config {
	cfg := &Config{
		TwitterBearerToken: os.Getenv("TWITTER_BEARER_TOKEN"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),
		XhireAPIEndpoint:   os.Getenv("XHIRE_API_ENDPOINT"),
		UseOwnerKeys:       os.Getenv("USE_OWNER_KEYS") == "true",
		ProxyHost:          os.Getenv("PROXY_HOST"),
		BookmarksPath:      os.Getenv("XHIRE_BOOKMARKS_PATH"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	if port, err := strconv.Atoi(os.Getenv("PROXY_PORT")); err == nil {
		cfg.ProxyPort = port
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field-level constraints (endpoint must be a URL, ports in range).
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range fieldErrors {
				return fmt.Errorf("config error: field %s failed %q validation", fieldError.Field(), fieldError.Tag())
			}
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Used to apply config-file values underneath environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.TwitterBearerToken == "" {
		result.TwitterBearerToken = defaults.TwitterBearerToken
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.XhireAPIEndpoint == "" {
		result.XhireAPIEndpoint = defaults.XhireAPIEndpoint
	}
	if result.ProxyHost == "" {
		result.ProxyHost = defaults.ProxyHost
	}
	if result.BookmarksPath == "" {
		result.BookmarksPath = defaults.BookmarksPath
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ProxyPort == 0 {
		result.ProxyPort = defaults.ProxyPort
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (environment values should always win for bools)

	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.ProxyHost == "" {
		result.ProxyHost = DefaultProxyHost
	}
	if result.ProxyPort == 0 {
		result.ProxyPort = DefaultProxyPort
	}

	return result
}
