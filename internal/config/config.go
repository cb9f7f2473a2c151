package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	Stream   Stream
	Care     Care
	Auth     Auth
	RTC      RTC
	Metrics  Metrics
	Logger   Logger
	Platform Platform
}

type Service struct {
	Port string `env:"CHAT_GATEWAY_SERVICE_PORT" env-default:"8080"`
	Name string `env:"CHAT_GATEWAY_SERVICE_NAME" env-default:"chat-gateway"`
}

type Postgres struct {
	User     string `env:"CHAT_GATEWAY_POSTGRES_USER"`
	Password string `env:"CHAT_GATEWAY_POSTGRES_PASSWORD"`
	Database string `env:"CHAT_GATEWAY_POSTGRES_DB"`
	Host     string `env:"CHAT_GATEWAY_POSTGRES_HOST"`
	Port     string `env:"CHAT_GATEWAY_POSTGRES_PORT" env-default:"5432"`
}

type Redis struct {
	Host     string `env:"CHAT_GATEWAY_REDIS_HOST"`
	Port     string `env:"CHAT_GATEWAY_REDIS_PORT" env-default:"6379"`
	Password string `env:"CHAT_GATEWAY_REDIS_PASSWORD"`
}

type Kafka struct {
	Host          string `env:"CHAT_GATEWAY_KAFKA_HOST"`
	Port          string `env:"CHAT_GATEWAY_KAFKA_PORT"`
	EnvelopeTopic string `env:"CHAT_GATEWAY_KAFKA_ENVELOPE_TOPIC" env-default:"chat.envelopes"`
}

type Stream struct {
	WSURL       string        `env:"CHAT_GATEWAY_STREAM_WS_URL"`
	BaseURL     string        `env:"CHAT_GATEWAY_STREAM_BASE_URL"`
	APIKey      string        `env:"CHAT_GATEWAY_STREAM_API_KEY"`
	Timeout     time.Duration `env:"CHAT_GATEWAY_STREAM_TIMEOUT" env-default:"10s"`
	HistorySize int           `env:"CHAT_GATEWAY_STREAM_HISTORY_SIZE" env-default:"20"`
}

type Care struct {
	BaseURL string        `env:"CHAT_GATEWAY_CARE_BASE_URL"`
	APIKey  string        `env:"CHAT_GATEWAY_CARE_API_KEY"`
	Timeout time.Duration `env:"CHAT_GATEWAY_CARE_TIMEOUT" env-default:"10s"`
}

type Auth struct {
	AccessSecret string `env:"CHAT_GATEWAY_AUTH_ACCESS_SECRET"`
}

type RTC struct {
	AppID         string        `env:"CHAT_GATEWAY_RTC_APP_ID"`
	JWTSecret     string        `env:"CHAT_GATEWAY_RTC_JWT_SECRET"`
	BaseURL       string        `env:"CHAT_GATEWAY_RTC_BASE_URL"`
	APIKey        string        `env:"CHAT_GATEWAY_RTC_API_KEY"`
	Timeout       time.Duration `env:"CHAT_GATEWAY_RTC_TIMEOUT" env-default:"10s"`
	DefaultAvatar string        `env:"CHAT_GATEWAY_DEFAULT_AVATAR"`
}

type Metrics struct {
	Host string `env:"CHAT_GATEWAY_METRICS_HOST"`
	Port int    `env:"CHAT_GATEWAY_METRICS_PORT"`
}

type Logger struct {
	Host string `env:"CHAT_GATEWAY_LOGGER_HOST"`
	Port string `env:"CHAT_GATEWAY_LOGGER_PORT"`
}

type Platform struct {
	Env string `env:"CHAT_GATEWAY_PLATFORM_ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
