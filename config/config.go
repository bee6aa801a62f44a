package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Amadeus AmadeusConfig `yaml:"amadeus"`
	Search  SearchConfig  `yaml:"search"`
	Booking BookingConfig `yaml:"booking"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
	Mode    string `yaml:"mode"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	ConfirmationsTopic string   `yaml:"confirmations_topic"`
	GroupID            string   `yaml:"group_id"`
}

type AmadeusConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

type SearchConfig struct {
	ResultsCacheTTL int  `yaml:"results_cache_ttl_seconds"`
	MaxResults      int  `yaml:"max_results"`
	UseMock         bool `yaml:"use_mock"`
}

type BookingConfig struct {
	ConfirmDelaySeconds int `yaml:"confirm_delay_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Amadeus.APIKey == "" {
		cfg.Amadeus.APIKey = os.Getenv("AMADEUS_API_KEY")
	}
	if cfg.Amadeus.APISecret == "" {
		cfg.Amadeus.APISecret = os.Getenv("AMADEUS_API_SECRET")
	}

	return &cfg, nil
}
