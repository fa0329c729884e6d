package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configurations.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Kafka struct {
		Enabled      bool     `mapstructure:"enabled"`
		Brokers      []string `mapstructure:"brokers"`
		KitchenTopic string   `mapstructure:"kitchen_topic"`
		BarTopic     string   `mapstructure:"bar_topic"`
	} `mapstructure:"kafka"`
	Printer struct {
		Enabled        bool   `mapstructure:"enabled"`
		Endpoint       string `mapstructure:"endpoint"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"printer"`
}

// LoadConfig reads configuration from .env and config/config.yml.
func LoadConfig() (*Config, error) {
	// .env is optional; env vars override file values for credentials.
	_ = godotenv.Load()

	viper.AddConfigPath("./config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", ":3000")
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", "3306")
	viper.SetDefault("database.user", "root")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "pos_db")
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"127.0.0.1:9092"})
	viper.SetDefault("kafka.kitchen_topic", "kitchen-tickets")
	viper.SetDefault("kafka.bar_topic", "bar-tickets")
	viper.SetDefault("printer.enabled", false)
	viper.SetDefault("printer.endpoint", "http://127.0.0.1:8043/print")
	viper.SetDefault("printer.timeout_seconds", 7)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults apply.
			fmt.Println("Config file not found, using default values.")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if pw := os.Getenv("DB_PASSWORD"); pw != "" {
		cfg.Database.Password = pw
	}

	return &cfg, nil
}
