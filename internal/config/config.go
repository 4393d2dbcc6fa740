package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env              string        `mapstructure:"ENV"`
	Port             string        `mapstructure:"PORT"`
	ModelPath        string        `mapstructure:"MODEL_PATH"`
	ModelDownloadURL string        `mapstructure:"MODEL_DOWNLOAD_URL"`
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	AdminKey         string        `mapstructure:"ADMIN_KEY"`
	CORSAllowed      string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	BatchLimit       int           `mapstructure:"BATCH_LIMIT"`
	BatchWorkers     int           `mapstructure:"BATCH_WORKERS"`
	HistoryLimit     int           `mapstructure:"HISTORY_LIMIT"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("MODEL_PATH", "./models/smarthome_complete_pipeline.json")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("BATCH_LIMIT", 100)
	v.SetDefault("BATCH_WORKERS", 4)
	v.SetDefault("HISTORY_LIMIT", 50)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
