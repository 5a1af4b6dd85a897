package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultModel = "gemini-2.5-flash"

type Config struct {
	AI struct {
		Model  string `yaml:"model"`
		APIKey string `yaml:"api_key"`
	} `yaml:"ai"`
	Cache struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"cache"`
	Output struct {
		File string `yaml:"file"`
	} `yaml:"output"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.AI.Model = defaultModel
	cfg.Cache.Enabled = true
	cfg.Output.File = "README.md"
	return &cfg
}

// Load reads the YAML config at path, then applies .env and environment
// overrides. A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultModel
	}
	if cfg.Output.File == "" {
		cfg.Output.File = "README.md"
	}

	if key := os.Getenv("READMEGEN_API_KEY"); key != "" {
		cfg.AI.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.AI.APIKey == "" {
		cfg.AI.APIKey = key
	}
	if model := os.Getenv("READMEGEN_MODEL"); model != "" {
		cfg.AI.Model = model
	}

	return cfg, nil
}
