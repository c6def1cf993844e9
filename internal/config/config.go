package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StateConfig struct {
	Dir string
}

type WatchConfig struct {
	Schedule   string
	UnreadOnly bool
}

type GatewayConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AllowOrigins []string
}

type ChatConfig struct {
	Model      string
	MaxHistory int
}

type AppConfig struct {
	Environment string
	API         APIConfig
	State       StateConfig
	Watch       WatchConfig
	Gateway     GatewayConfig
	Chat        ChatConfig
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "medicheck"))
	}

	v.SetEnvPrefix("MEDICHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.State.Dir == "" {
		cfg.State.Dir = defaultStateDir()
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("api.baseurl", "http://127.0.0.1:8000")
	v.SetDefault("api.timeout", "30s")

	v.SetDefault("watch.schedule", "0 * * * * *") // every minute
	v.SetDefault("watch.unreadonly", true)

	v.SetDefault("gateway.host", "127.0.0.1")
	v.SetDefault("gateway.port", 8787)
	v.SetDefault("gateway.readtimeout", "10s")
	v.SetDefault("gateway.writetimeout", "15s")
	v.SetDefault("gateway.idletimeout", "60s")

	v.SetDefault("chat.model", "openrouter/sherlock-dash-alpha")
	v.SetDefault("chat.maxhistory", 20)
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "medicheck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".medicheck"
	}
	return filepath.Join(home, ".medicheck")
}
