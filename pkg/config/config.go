package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 支援的資料儲存驅動
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Store  StoreConfig
	DB     DBConfig
}

type ServerConfig struct {
	Address string
	Mode    string // gin 模式: debug / release / test
}

type LogConfig struct {
	Level  string
	Format string // console 或 json
}

type StoreConfig struct {
	Driver     string
	Seed       bool
	SQLitePath string `mapstructure:"sqlite_path"`
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
	SSLMode  string `mapstructure:"sslmode"`
}

// Load 讀取設定檔與環境變數
// configFile 為空時依序在 . 與 ./pkg/config 尋找 config.yaml，找不到則使用預設值
func Load(configFile string) (*Config, error) {
	// .env 只是補充環境變數，不存在時忽略
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./pkg/config")
	}

	v.SetEnvPrefix("SHOWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.seed", true)
	v.SetDefault("store.sqlite_path", "shows.db")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "shows")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")
}

// Validate 檢查設定值是否合法
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return nil
}
