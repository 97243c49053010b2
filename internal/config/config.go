package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env string `yaml:"env"`
	HTTPServer  `yaml:"http_server"`
	PaymentDB   `yaml:"payment_db"`
	NOWPayments `yaml:"nowpayments"`
	Payment     `yaml:"payment"`
	KafkaService `yaml:"kafka-service"`
	SMTP        `yaml:"smtp"`
	AdminAPI    `yaml:"admin_api"`
	LogConfig   `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	MetricsPort string `yaml:"metrics_port"`
}

type PaymentDB struct {
	Dsn string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type NOWPayments struct {
	BaseURL     string        `yaml:"base_url" env-default:"https://api.nowpayments.io/v1"`
	APIKey      string        `yaml:"api_key" env:"NOWPAYMENTS_API_KEY"`
	IPNSecret   string        `yaml:"ipn_secret" env:"NOWPAYMENTS_IPN_SECRET"`
	CallbackURL string        `yaml:"callback_url"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	RequireSignature bool     `yaml:"require_signature" env-default:"false"`
}

type Payment struct {
	SettlementCurrency string        `yaml:"settlement_currency" env-default:"usd"`
	DefaultPayCurrency string        `yaml:"default_pay_currency" env-default:"btc"`
	OrderTTL           time.Duration `yaml:"order_ttl" env-default:"1h"`
	PriceCeiling       float64       `yaml:"price_ceiling" env-default:"1000"`
	ExpirySweepInterval time.Duration `yaml:"expiry_sweep_interval" env-default:"1m"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	ActivationTopic string `yaml:"activation_topic" env-default:"payment-activations"`
	FailureTopic    string `yaml:"failure_topic" env-default:"payment-failures"`
}

type SMTP struct {
	Server   string `yaml:"server" env:"SMTP_SERVER"`
	Port     string `yaml:"port" env:"SMTP_PORT"`
	User     string `yaml:"user" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASS"`
	FromAddr string `yaml:"from_addr"`
	FromName string `yaml:"from_name"`
}

type AdminAPI struct {
	Token string `yaml:"token" env:"ADMIN_API_TOKEN"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

func MustLoad() *PaymentConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PAYMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PAYMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PaymentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
