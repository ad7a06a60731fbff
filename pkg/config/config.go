package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP               HTTP
	Logger             Logger
	Postgres           Postgres
	AuthServiceURL     string `env:"AUTH_SERVICE_URL"`
	MerchantServiceURL string `env:"MERCHANTS_SERVICE_URL"`
	Kafka              Kafka
	PromptPay          PromptPay
	SlipOK             SlipOK
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers        []string `env:"KAFKA_BROKERS"`
	OrderPaidTopic string   `env:"KAFKA_ORDER_PAID_TOPIC"`
}

type PromptPay struct {
	// PlatformID receives payments for merchants without their own PromptPay ID.
	// Phone, national ID or tax ID in any of the accepted formats.
	PlatformID string `env:"PROMPTPAY_PLATFORM_ID"`
}

type SlipOK struct {
	BaseURL              string   `env:"SLIPOK_BASE_URL"`
	APIKey               string   `env:"SLIPOK_API_KEY"`
	CallbackIPWL         []string `env:"SLIPOK_CALLBACK_IP_WL"`
	CallbackCheckEnabled bool     `env:"SLIPOK_CALLBACK_CHECK_ENABLED" envDefault:"false"`
	CallbackPublicKey    string   `env:"SLIPOK_CALLBACK_PUBLIC_KEY"` // PEM encoded
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
