// Package config loads runtime settings from YAML, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	Hotel  HotelConfig  `yaml:"hotel"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// HotelConfig controls the booking desk.
type HotelConfig struct {
	MaxRequest    int     `yaml:"max_request"`    // Largest allowed request
	OccupancyRate float64 `yaml:"occupancy_rate"` // Probability a room is occupied on randomize
	Seed          int64   `yaml:"seed"`           // 0 = seed from clock
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Hotel: HotelConfig{
			MaxRequest:    5,
			OccupancyRate: 0.35,
		},
		Server: ServerConfig{Addr: ":8090"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path (skipped if empty), then a .env file in
// the working directory if present, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Hotel.Seed = getEnvAsInt64("HOTEL_SEED", c.Hotel.Seed)
	c.Hotel.OccupancyRate = getEnvAsFloat("HOTEL_OCCUPANCY_RATE", c.Hotel.OccupancyRate)
	c.Hotel.MaxRequest = getEnvAsInt("HOTEL_MAX_REQUEST", c.Hotel.MaxRequest)
	c.Server.Addr = getEnv("HOTEL_ADDR", c.Server.Addr)
	c.Log.Level = getEnv("HOTEL_LOG_LEVEL", c.Log.Level)
}

// Validate checks setting ranges.
func (c *Config) Validate() error {
	if c.Hotel.MaxRequest < 1 {
		return fmt.Errorf("hotel.max_request must be at least 1, got %d", c.Hotel.MaxRequest)
	}
	if c.Hotel.OccupancyRate < 0 || c.Hotel.OccupancyRate > 1 {
		return fmt.Errorf("hotel.occupancy_rate must be within [0,1], got %g", c.Hotel.OccupancyRate)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
