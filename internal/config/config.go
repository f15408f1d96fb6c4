package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the API server. Values are read from
// config.yaml when present and can always be overridden through ATRIUM_*
// environment variables (e.g. ATRIUM_DATABASE_DSN, ATRIUM_STORAGE_BACKEND).
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig selects the backing policy for the project and contact stores.
// "postgres" is the persisted multi-user mode; "local" is the zero-backend demo
// mode holding everything in a single serialized file slot.
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	SlotPath string `mapstructure:"slot_path"`
}

const (
	BackendPostgres = "postgres"
	BackendLocal    = "local"
)

type DatabaseConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxIdle     int    `mapstructure:"max_idle"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	EnableTLS   bool   `mapstructure:"enable_tls"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"pool_size"`
	EnableTLS bool   `mapstructure:"enable_tls"`
}

type RabbitMQConfig struct {
	URL          string `mapstructure:"url"`
	EnableTLS    bool   `mapstructure:"enable_tls"`
	ExchangeName string `mapstructure:"exchange_name"`
	QueueName    string `mapstructure:"queue_name"`
	RoutingKey   string `mapstructure:"routing_key"`
	Prefetch     int    `mapstructure:"prefetch"`
}

// AdminConfig carries the fixed credential pair used by the local (demo)
// variant. PasswordPHC takes precedence over Password when both are set.
type AdminConfig struct {
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	PasswordPHC   string `mapstructure:"password_phc"`
	SessionTTLMin int    `mapstructure:"session_ttl_min"`
}

type SupabaseConfig struct {
	ProjectRef string `mapstructure:"project_ref"`
	AnonKey    string `mapstructure:"anon_key"`
}

type TelemetryConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OtlpEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("atrium")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; env vars and defaults are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "atrium-api")
	v.SetDefault("app.env", "development")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")

	v.SetDefault("storage.backend", BackendPostgres)
	v.SetDefault("storage.slot_path", "data/portfolio_projects.json")

	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("rabbitmq.exchange_name", "atrium.events")
	v.SetDefault("rabbitmq.queue_name", "atrium.project_views")
	v.SetDefault("rabbitmq.routing_key", "project.viewed")
	v.SetDefault("rabbitmq.prefetch", 10)

	v.SetDefault("admin.session_ttl_min", 60)

	v.SetDefault("telemetry.sample_ratio", 1.0)
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("storage backend %q requires database.dsn", c.Storage.Backend)
		}
	case BackendLocal:
		if c.Storage.SlotPath == "" {
			return fmt.Errorf("storage backend %q requires storage.slot_path", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
