package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Listings struct {
		Path string `yaml:"path"`
		Seed int64  `yaml:"seed"`
	} `yaml:"listings"`
	AI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"ai"`
	Email struct {
		APIKey string `yaml:"api_key"`
		From   string `yaml:"from"`
	} `yaml:"email"`
	App struct {
		FrontendURL string `yaml:"frontend_url"`
	} `yaml:"app"`
}

// LoadConfig reads the yaml config (path from CONFIG_PATH, default
// config/config.yaml) and lets environment variables override the secrets
// so they stay out of the file.
func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.URL = dsn
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		cfg.AI.APIKey = key
	}
	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		cfg.Email.APIKey = key
	}
	if url := os.Getenv("APP_URL"); url != "" {
		cfg.App.FrontendURL = url
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-1.5-flash"
	}
	return cfg
}
