package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default listen ports per service, matching the gateway's default registry.
var defaultPorts = map[string]string{
	"gateway":  "8000",
	"users":    "8001",
	"products": "8002",
	"orders":   "8003",
}

// Config holds all configuration for one service process
type Config struct {
	DB       DatabaseConfig
	App      AppConfig
	Services ServicesConfig
	Logger   LoggerConfig
}

// DatabaseConfig holds configuration for the database
type DatabaseConfig struct {
	URL             string `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `mapstructure:"DB_CONN_MAX_LIFETIME_SECONDS"`
	ConnMaxIdleTime int    `mapstructure:"DB_CONN_MAX_IDLE_TIME_SECONDS"`
}

// AppConfig holds configuration for the HTTP server
type AppConfig struct {
	HTTPPort               string `mapstructure:"HTTP_PORT"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// ServicesConfig holds the addresses of peer services. The gateway uses the
// first three as its registry; the orders service uses the last two for name
// enrichment.
type ServicesConfig struct {
	UsersURL           string `mapstructure:"USERS_URL"`
	ProductsURL        string `mapstructure:"PRODUCTS_URL"`
	OrdersURL          string `mapstructure:"ORDERS_URL"`
	UsersServiceURL    string `mapstructure:"USERS_SERVICE_URL"`
	ProductsServiceURL string `mapstructure:"PRODUCTS_SERVICE_URL"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level            string  `mapstructure:"LOG_LEVEL"`
	Format           string  `mapstructure:"LOG_FORMAT"`
	OutputPath       string  `mapstructure:"LOG_OUTPUT_PATH"`
	SlowQuerySeconds float64 `mapstructure:"LOG_SLOW_QUERY_SECONDS"`
	EnableSampling   bool    `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName      string  `mapstructure:"SERVICE_NAME"`
	ServiceVersion   string  `mapstructure:"SERVICE_VERSION"`
}

// Load reads configuration from file or environment variables for the named
// service (users, products, orders, gateway).
func Load(path, service string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv() // Read from environment variables

	// Defaults depend on APP_ENV, so AutomaticEnv must already be on.
	setDefaults(v, service)

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	config.DB.URL = v.GetString("DATABASE_URL")
	config.DB.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS")
	config.DB.MaxIdleConns = v.GetInt("DB_MAX_IDLE_CONNS")
	config.DB.ConnMaxLifetime = v.GetInt("DB_CONN_MAX_LIFETIME_SECONDS")
	config.DB.ConnMaxIdleTime = v.GetInt("DB_CONN_MAX_IDLE_TIME_SECONDS")

	config.App.HTTPPort = v.GetString("HTTP_PORT")
	config.App.ShutdownTimeoutSeconds = v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")

	config.Services.UsersURL = v.GetString("USERS_URL")
	config.Services.ProductsURL = v.GetString("PRODUCTS_URL")
	config.Services.OrdersURL = v.GetString("ORDERS_URL")
	config.Services.UsersServiceURL = v.GetString("USERS_SERVICE_URL")
	config.Services.ProductsServiceURL = v.GetString("PRODUCTS_SERVICE_URL")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.SlowQuerySeconds = v.GetFloat64("LOG_SLOW_QUERY_SECONDS")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")

	return &config, nil
}

func setDefaults(v *viper.Viper, service string) {
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SECONDS", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME_SECONDS", 60)

	v.SetDefault("HTTP_PORT", defaultPorts[service])
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)

	v.SetDefault("USERS_URL", "http://localhost:8001")
	v.SetDefault("PRODUCTS_URL", "http://localhost:8002")
	v.SetDefault("ORDERS_URL", "http://localhost:8003")
	v.SetDefault("USERS_SERVICE_URL", "http://localhost:8001")
	v.SetDefault("PRODUCTS_SERVICE_URL", "http://localhost:8002")

	env := v.GetString("APP_ENV")
	if env == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("LOG_SLOW_QUERY_SECONDS", 0.2)
	v.SetDefault("SERVICE_NAME", service)
	v.SetDefault("SERVICE_VERSION", "1.0.0")
}

// ValidateStore checks the configuration a resource service needs before it
// can serve traffic. A missing database URL is fatal at startup.
func (c *Config) ValidateStore() error {
	if c.DB.URL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}
	return nil
}
