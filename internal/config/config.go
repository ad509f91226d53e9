package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration, captured once at startup and
// passed into each component constructor.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Exa contains settings for the remote websets provider
	Exa struct {
		// APIKey authenticates requests against the websets API
		APIKey string `env:"EXA_API_KEY" yaml:"apiKey"`
		// BaseURL is the root of the websets API
		BaseURL string `env:"EXA_BASE_URL" env-default:"https://api.exa.ai/websets/v0" yaml:"baseURL"`
		// Timeout bounds every single HTTP call to the provider
		Timeout time.Duration `env:"EXA_TIMEOUT" env-default:"1m" yaml:"timeout"`
		// SearchCount is the number of results requested when creating a webset
		SearchCount int `env:"EXA_SEARCH_COUNT" env-default:"25" yaml:"searchCount"`
	} `yaml:"exa"`

	// Data contains settings for the on-disk table artifacts
	Data struct {
		// Folder is where per-vertical and combined CSV tables are written
		Folder string `env:"DATA_FOLDER" env-default:"data" yaml:"folder"`
		// PartPrefix selects which files in Folder the disk merger picks up
		PartPrefix string `env:"DATA_PART_PREFIX" env-default:"clean_df_part" yaml:"partPrefix"`
	} `yaml:"data"`
}

// Load reads the yaml config file at configPath and returns a filled Config.
// When the file does not exist, configuration is read from the environment
// alone so the tool also works with just an API key exported.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not stat config file: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
