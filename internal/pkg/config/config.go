package config

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config is the global configuration tree.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Explorer ExplorerConfig `mapstructure:"explorer"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// UpstreamConfig points at the platform REST backend the dashboard consumes.
type UpstreamConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	PageSize       int    `mapstructure:"page_size"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Port     string `mapstructure:"port"`
	SSLMode  string `mapstructure:"sslmode"`
	TimeZone string `mapstructure:"timezone"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Expire int64  `mapstructure:"expire"` // hours
}

// ChainConfig holds everything needed to talk to the token contracts.
type ChainConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ChainID         int64  `mapstructure:"chain_id"`
	TokenAddress    string `mapstructure:"token_address"`
	PlatformAddress string `mapstructure:"platform_address"`
	PrivateKey      string `mapstructure:"private_key"` // hex, no 0x prefix
}

type ExplorerConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type AppConfig struct {
	Env          string   `mapstructure:"env"`
	Debug        bool     `mapstructure:"debug"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

var GlobalConfig Config

// Validate checks configuration consistency before the server starts.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" || c.JWT.Secret == "your_super_secret_key" {
		return errors.New("please set a secure JWT secret in production")
	}
	if len(c.JWT.Secret) < 32 {
		return errors.New("JWT secret should be at least 32 characters")
	}

	if c.Upstream.BaseURL == "" {
		return errors.New("upstream base_url is required")
	}

	if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
		return errors.New("database configuration is incomplete")
	}

	if c.Redis.Addr == "" {
		return errors.New("redis address is required")
	}

	if c.Chain.RPCURL != "" {
		if c.Chain.TokenAddress == "" || c.Chain.PlatformAddress == "" {
			return errors.New("chain contract addresses are required when rpc_url is set")
		}
	}

	return nil
}

// LoadConfig reads configs/config.yaml (per APP_ENV) and env overrides.
func LoadConfig() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	configName := "config"
	if env != "" && env != "dev" {
		configName = "config." + env
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("jwt.expire", 24)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("upstream.timeout_seconds", 30)
	viper.SetDefault("upstream.page_size", 10)
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("app.debug", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Config file not found, using defaults or env vars: %v", err)
	}

	viper.AutomaticEnv()

	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	// Manual overrides for the settings most commonly injected per deploy.
	if base := os.Getenv("UPSTREAM_BASE_URL"); base != "" {
		GlobalConfig.Upstream.BaseURL = base
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		GlobalConfig.Database.Host = host
	}
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		GlobalConfig.Redis.Addr = redisAddr
	}
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		GlobalConfig.JWT.Secret = jwtSecret
	}
	if key := os.Getenv("CHAIN_PRIVATE_KEY"); key != "" {
		GlobalConfig.Chain.PrivateKey = key
	}
	if key := os.Getenv("EXPLORER_API_KEY"); key != "" {
		GlobalConfig.Explorer.APIKey = key
	}

	if err := GlobalConfig.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	log.Printf("Configuration loaded and validated successfully. Environment: %s", GlobalConfig.App.Env)
}
