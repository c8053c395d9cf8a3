package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Rabbit RabbitConfig `mapstructure:"rabbit"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RabbitConfig struct {
	URI      string `mapstructure:"uri"`
	Exchange string `mapstructure:"exchange"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads config.yaml if present and lets environment variables override
// every key (SERVER_PORT, MONGO_URI, RABBIT_URI, ...).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("server.port", "6700")
	v.SetDefault("server.mode", "release")
	v.SetDefault("mongo.database", "training_service")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.file", "logs/training-service.log")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env values through Unmarshal for
	// keys viper has never seen, so every overridable key is bound
	// explicitly.
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.database", "MONGO_DATABASE")
	v.BindEnv("rabbit.uri", "RABBIT_URI", "RABBITMQ_URI")
	v.BindEnv("rabbit.exchange", "RABBIT_EXCHANGE", "RABBITMQ_EXCHANGE")
	v.BindEnv("log.file", "LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
