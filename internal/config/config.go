package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Email    EmailConfig
	Payment  PaymentConfig
	Calendar CalendarConfig
	Schedule ScheduleConfig
	Salon    SalonConfig
	Log      LogConfig
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	TimeoutSeconds int      `mapstructure:"timeoutSeconds"`
	RateLimitRPS   float64  `mapstructure:"rateLimitRPS"`
	RateLimitBurst int      `mapstructure:"rateLimitBurst"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password" envconfig:"DATABASE_PASSWORD"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password" envconfig:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret" envconfig:"JWT_SECRET"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type EmailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password" envconfig:"SMTP_PASSWORD"`
	From     string `mapstructure:"from"`
	Enabled  bool   `mapstructure:"enabled"`
}

type PaymentConfig struct {
	BaseURL      string `mapstructure:"baseURL"`
	APIKey       string `mapstructure:"apiKey" envconfig:"PAYMENT_API_KEY"`
	DepositCents int64  `mapstructure:"depositCents"`
	Currency     string `mapstructure:"currency"`
}

type CalendarConfig struct {
	BaseURL    string `mapstructure:"baseURL"`
	Token      string `mapstructure:"token" envconfig:"CALENDAR_TOKEN"`
	CalendarID string `mapstructure:"calendarID"`
	Enabled    bool   `mapstructure:"enabled"`
}

type ScheduleConfig struct {
	SlotIntervalMinutes int               `mapstructure:"slotIntervalMinutes"`
	Hours               map[string]string `mapstructure:"hours"`
}

type SalonConfig struct {
	Name string `mapstructure:"name"`
}

func (c ServerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// LoadConfig reads config.yaml and then applies environment overrides for
// secrets, so deployments never need credentials on disk.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("booking", &config); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.TimeoutSeconds == 0 {
		config.Server.TimeoutSeconds = 30
	}
	if config.Server.RateLimitRPS == 0 {
		config.Server.RateLimitRPS = 20
	}
	if config.Server.RateLimitBurst == 0 {
		config.Server.RateLimitBurst = 40
	}
	if config.JWT.ExpiryHours == 0 {
		config.JWT.ExpiryHours = 24
	}
	if config.Payment.DepositCents == 0 {
		config.Payment.DepositCents = 2000
	}
	if config.Payment.Currency == "" {
		config.Payment.Currency = "usd"
	}
	if config.Schedule.SlotIntervalMinutes == 0 {
		config.Schedule.SlotIntervalMinutes = 30
	}
	if config.Salon.Name == "" {
		config.Salon.Name = "Velora Studio"
	}
}
