package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

type Logging struct {
	Level string `mapstructure:"level"`
}

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type PriceAPI struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type Scheduler struct {
	PricesCron string `mapstructure:"prices_cron"`
	SplashCron string `mapstructure:"splash_cron"`
	RunOnStart bool   `mapstructure:"run_on_start"`
}

type KVStore struct {
	Driver    string `mapstructure:"driver"`
	MaxItems  int64  `mapstructure:"max_items"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type ObjectStore struct {
	Driver    string `mapstructure:"driver"`
	Endpoint  string `mapstructure:"endpoint"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Redis struct {
	Addr string `mapstructure:"addr"`
	Pass string `mapstructure:"pass"`
	DB   int    `mapstructure:"db"`
}

type AppConfig struct {
	Logging      Logging     `mapstructure:"logging"`
	PriceServer  HTTPServer  `mapstructure:"price_server"`
	SplashServer HTTPServer  `mapstructure:"splash_server"`
	OpsServer    HTTPServer  `mapstructure:"ops_server"`
	HTTPClient   HTTPClient  `mapstructure:"http_client"`
	PriceAPI     PriceAPI    `mapstructure:"price_api"`
	Scheduler    Scheduler   `mapstructure:"scheduler"`
	KVStore      KVStore     `mapstructure:"kv_store"`
	ObjectStore  ObjectStore `mapstructure:"object_store"`
	DbServer     DbServer    `mapstructure:"db_server"`
	Redis        Redis       `mapstructure:"redis"`
}

// UsesPostgres reports whether any store is backed by the database.
func (c *AppConfig) UsesPostgres() bool {
	return c.KVStore.Driver == DriverPostgres || c.ObjectStore.Driver == DriverPostgres
}

// Init loads .env (if present), then CONFIG_FILE or config.yaml (if present),
// then environment overrides.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	return Load(configFile)
}

func Load(configFile string) (*AppConfig, error) {
	var cfg AppConfig
	v := viper.New()

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("logging.level", "info")
	v.SetDefault("price_server.port", "8080")
	v.SetDefault("splash_server.port", "8081")
	v.SetDefault("ops_server.port", "9090")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("price_api.base_url", "https://min-api.cryptocompare.com")
	v.SetDefault("scheduler.prices_cron", "*/5 * * * *")
	v.SetDefault("scheduler.splash_cron", "0 * * * *")
	v.SetDefault("scheduler.run_on_start", false)
	v.SetDefault("kv_store.driver", DriverMemory)
	v.SetDefault("kv_store.max_items", 64)
	v.SetDefault("object_store.driver", DriverMemory)
	v.SetDefault("object_store.region", "auto")
	v.SetDefault("object_store.use_ssl", true)
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("redis.addr", "localhost:6379")

	// logging
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// servers
	_ = v.BindEnv("price_server.port", "PRICE_SERVER_PORT")
	_ = v.BindEnv("splash_server.port", "SPLASH_SERVER_PORT")
	_ = v.BindEnv("ops_server.port", "OPS_SERVER_PORT")

	// upstream
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("price_api.base_url", "PRICE_API_BASE_URL")
	_ = v.BindEnv("price_api.api_key", "PRICE_API_KEY")

	// scheduler
	_ = v.BindEnv("scheduler.prices_cron", "SCHEDULER_PRICES_CRON")
	_ = v.BindEnv("scheduler.splash_cron", "SCHEDULER_SPLASH_CRON")
	_ = v.BindEnv("scheduler.run_on_start", "SCHEDULER_RUN_ON_START")

	// stores
	_ = v.BindEnv("kv_store.driver", "KV_STORE_DRIVER")
	_ = v.BindEnv("kv_store.key_prefix", "KV_STORE_KEY_PREFIX")
	_ = v.BindEnv("object_store.driver", "OBJECT_STORE_DRIVER")
	_ = v.BindEnv("object_store.endpoint", "OBJECT_STORE_ENDPOINT")
	_ = v.BindEnv("object_store.bucket", "OBJECT_STORE_BUCKET")
	_ = v.BindEnv("object_store.access_key", "OBJECT_STORE_ACCESS_KEY")
	_ = v.BindEnv("object_store.secret_key", "OBJECT_STORE_SECRET_KEY")
	_ = v.BindEnv("object_store.region", "OBJECT_STORE_REGION")
	_ = v.BindEnv("object_store.use_ssl", "OBJECT_STORE_USE_SSL")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// redis env vars
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.pass", "REDIS_PASS")
	_ = v.BindEnv("redis.db", "REDIS_DB")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	var problems []string

	switch c.KVStore.Driver {
	case DriverMemory, DriverRedis, DriverPostgres:
	default:
		problems = append(problems, fmt.Sprintf("unknown kv_store.driver %q", c.KVStore.Driver))
	}

	switch c.ObjectStore.Driver {
	case DriverMemory, DriverPostgres:
	case DriverS3:
		if c.ObjectStore.Endpoint == "" {
			problems = append(problems, "object_store.endpoint is required for s3")
		}
		if c.ObjectStore.Bucket == "" {
			problems = append(problems, "object_store.bucket is required for s3")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown object_store.driver %q", c.ObjectStore.Driver))
	}

	if c.UsesPostgres() && c.DbServer.Host == "" {
		problems = append(problems, "db_server.host is required for postgres stores")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
