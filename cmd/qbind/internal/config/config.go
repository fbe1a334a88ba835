// Package config resolves CLI configuration from qbind.yaml, environment
// variables (QBIND_*), and an optional .env file.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/querylab/qbind/connector"
)

type Config struct {
	Dialect string
	DB      connector.Config
}

// Load reads configuration. Path may be empty, in which case qbind.yaml in
// the working directory is used when present. A missing config file is fine;
// environment variables and defaults still apply.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	v.SetEnvPrefix("QBIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("dialect", "sqlite")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.ssl_mode", "disable")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("qbind")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	cfg := &Config{Dialect: v.GetString("dialect")}
	cfg.DB.Host = v.GetString("db.host")
	cfg.DB.Port = v.GetInt("db.port")
	cfg.DB.Database = v.GetString("db.database")
	cfg.DB.Username = v.GetString("db.username")
	cfg.DB.Password = v.GetString("db.password")
	cfg.DB.SSLMode = v.GetString("db.ssl_mode")
	cfg.DB.ConnectTimeout = v.GetDuration("db.connect_timeout")
	cfg.DB.QueryTimeout = v.GetDuration("db.query_timeout")
	cfg.DB.Pool.MaxOpen = v.GetInt("db.pool.max_open")
	cfg.DB.Pool.MaxIdle = v.GetInt("db.pool.max_idle")

	if def := defaultPort(cfg.Dialect); cfg.DB.Port == 0 && def != 0 {
		cfg.DB.Port = def
	}

	return cfg, nil
}

func defaultPort(dialect string) int {
	switch dialect {
	case "postgres":
		return 5432
	case "mysql":
		return 3306
	default:
		return 0
	}
}
