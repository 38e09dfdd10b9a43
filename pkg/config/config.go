package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Sheets struct {
		CredentialsFile string `yaml:"credentials_file"`
		Sales           struct {
			SpreadsheetID string        `yaml:"spreadsheet_id"`
			SheetName     string        `yaml:"sheet_name"`
			CacheTTL      time.Duration `yaml:"cache_ttl"`
		} `yaml:"sales"`
		Listings struct {
			SpreadsheetID string        `yaml:"spreadsheet_id"`
			SheetName     string        `yaml:"sheet_name"`
			CacheTTL      time.Duration `yaml:"cache_ttl"`
		} `yaml:"listings"`
	} `yaml:"sheets"`
	AI struct {
		Enabled         bool          `yaml:"enabled"`
		APIKey          string        `yaml:"api_key"`
		BaseURL         string        `yaml:"base_url"`
		Model           string        `yaml:"model"`
		ClassifyTimeout time.Duration `yaml:"classify_timeout"`
		InsightTimeout  time.Duration `yaml:"insight_timeout"`
	} `yaml:"ai"`
	Model struct {
		Path          string  `yaml:"path"`
		FallbackPrice float64 `yaml:"fallback_price"`
	} `yaml:"model"`
	Usage struct {
		DBPath        string `yaml:"db_path"`
		DailyLimit    int    `yaml:"daily_limit"`
		RetentionDays int    `yaml:"retention_days"`
		AdminKey      string `yaml:"admin_key"`
	} `yaml:"usage"`
	RateLimit struct {
		Burst        int     `yaml:"burst"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"ratelimit"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	c, err := parse(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func parse(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables. Validation runs after the overrides so secrets can be env-only.
func LoadWithEnv(path string) (*Config, error) {
	c, err := parse(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		c.Sheets.CredentialsFile = v
	}
	if v := os.Getenv("SALES_SPREADSHEET_ID"); v != "" {
		c.Sheets.Sales.SpreadsheetID = v
	}
	if v := os.Getenv("LISTINGS_SPREADSHEET_ID"); v != "" {
		c.Sheets.Listings.SpreadsheetID = v
	}
	if v := os.Getenv("DEEPSEEK_API_KEY"); v != "" {
		c.AI.APIKey = v
		c.AI.Enabled = true
	}
	if v := os.Getenv("ADMIN_SECRET_KEY"); v != "" {
		c.Usage.AdminKey = v
	}
	if v := os.Getenv("DAILY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Usage.DailyLimit = n
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Sheets.Sales.SpreadsheetID == "" {
		return fmt.Errorf("sheets.sales.spreadsheet_id is required")
	}
	if c.Sheets.CredentialsFile == "" {
		return fmt.Errorf("sheets.credentials_file is required")
	}
	if c.AI.Enabled && c.AI.APIKey == "" {
		return fmt.Errorf("ai.api_key is required when ai.enabled is true")
	}
	if c.Usage.DailyLimit < 0 {
		return fmt.Errorf("usage.daily_limit cannot be negative")
	}
	if c.Model.FallbackPrice < 0 {
		return fmt.Errorf("model.fallback_price cannot be negative")
	}
	return nil
}
