package configs

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Storage backends accepted by app.storage
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Postgres `mapstructure:"postgres"`
	Redis    `mapstructure:"redis"`
	Kafka    `mapstructure:"kafka"`
}

// App struct
type App struct {
	Debug   bool   `mapstructure:"debug"`
	Env     string `mapstructure:"env"`
	Port    string `mapstructure:"port"`
	Storage string `mapstructure:"storage"`
}

// Postgres struct
type Postgres struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DbName       string `mapstructure:"database"`
	SSLMode      bool   `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// Redis struct - TTL is in seconds
type Redis struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	TTL     int    `mapstructure:"ttl"`
}

// Kafka struct
type Kafka struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

var config Config

// InitViper func - Reads config.yaml from path, environment variables win.
// A non-empty env overrides app.env.
func InitViper(path, env string) error {
	if err := getConfig(path, env); err != nil {
		return err
	}
	return config.validate()
}

// GetViper func
func GetViper() *Config {
	return &config
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.env", "local")
	viper.SetDefault("app.port", "9089")
	viper.SetDefault("app.storage", StorageMemory)
	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.auto_migrate", true)
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.url", "redis://localhost:6379/0")
	viper.SetDefault("redis.ttl", 30)
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "todo-events")
}

func getConfig(path, env string) error {
	setDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infof("Config file has changed: %s", e.Name)
	})
	config = Config{}
	err = viper.Unmarshal(&config)
	if err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if env != "" {
		config.App.Env = env
	}
	return nil
}

func (c Config) validate() error {
	switch c.App.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown app.storage %q, want %s or %s", c.App.Storage, StorageMemory, StoragePostgres)
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be positive, got %d", c.Redis.TTL)
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return fmt.Errorf("kafka.brokers and kafka.topic are required when kafka is enabled")
	}
	return nil
}
