package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	NotifierLog   = "log"
	NotifierKafka = "kafka"
	NotifierRedis = "redis"
)

type Config struct {
	App struct {
		Port            string        `mapstructure:"port"`
		Env             string        `mapstructure:"env"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
		BodyLimit       int64         `mapstructure:"body_limit"`
	} `mapstructure:"app"`
	CORS struct {
		Origins []string `mapstructure:"origins"`
	} `mapstructure:"cors"`
	Seed struct {
		File string `mapstructure:"file"`
	} `mapstructure:"seed"`
	Notifier struct {
		Driver string `mapstructure:"driver"`
	} `mapstructure:"notifier"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		Channel  string `mapstructure:"channel"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
		ServiceName  string `mapstructure:"service_name"`
	} `mapstructure:"tracing"`
}

// LoadConfig reads .env, an optional config.yaml from the given paths (default "."),
// and finally the environment. Environment variables win.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	v.SetDefault("app.port", "3001")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.shutdown_timeout", 5*time.Second)
	v.SetDefault("app.body_limit", int64(10<<20))
	v.SetDefault("cors.origins", "http://localhost:5173")
	v.SetDefault("notifier.driver", NotifierLog)
	v.SetDefault("redis.channel", "submissions")
	v.SetDefault("kafka.group_id", "submission-processor-group")
	v.SetDefault("tracing.service_name", "profile-directory")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "PORT", "APP_PORT")
	v.BindEnv("app.env", "NODE_ENV", "APP_ENV")
	v.BindEnv("app.shutdown_timeout", "SHUTDOWN_TIMEOUT")
	v.BindEnv("app.body_limit", "BODY_LIMIT")
	v.BindEnv("cors.origins", "CORS_ORIGIN")
	v.BindEnv("seed.file", "SEED_FILE")
	v.BindEnv("notifier.driver", "NOTIFIER_DRIVER")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.channel", "REDIS_CHANNEL")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("tracing.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("tracing.service_name", "OTEL_SERVICE_NAME")

	err = v.Unmarshal(&cfg)
	return
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}
