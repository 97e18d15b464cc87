package config

import (
	"log"
	"strings"
	"time"
	_ "time/tzdata" // embedded zone database for images without /usr/share/zoneinfo

	"github.com/caarlos0/env/v10"
)

const (
	StoreDriverPostgREST = "postgrest"
	StoreDriverDynamoDB  = "dynamodb"
	StoreDriverMemory    = "memory"

	PaymentProviderWebhook     = "webhook"
	PaymentProviderMercadoPago = "mercadopago"
)

type Config struct {
	Environment Environment
	HTTP        HTTPServer
	Store       Store
	Tables      Tables `envPrefix:"TABLE_"`
	Payments    Payments
	Session     Session
	Auth        Auth
	Panel       Panel `envPrefix:"PANEL_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type HTTPServer struct {
	Host         string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port         string        `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	// Outbound calls to the row store and webhooks.
	ClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"30s"`
}

type Store struct {
	Driver      string `env:"STORE_DRIVER" envDefault:"postgrest"`
	SupabaseURL string `env:"SUPABASE_URL"`
	SupabaseKey string `env:"SUPABASE_KEY"`

	// DynamoDB Local does not validate credentials, but the AWS SDK requires them.
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
}

// Tables maps each entity onto its collection name in the row store.
type Tables struct {
	Configurations string `env:"CONFIGURATIONS" envDefault:"master_configuracoes"`
	Plans          string `env:"PLANS" envDefault:"master_planos"`
	Associates     string `env:"ASSOCIATES" envDefault:"master_associados"`
	AssociateLogs  string `env:"ASSOCIATE_LOGS" envDefault:"associado_logs_pix"`
	AdminLogs      string `env:"ADMIN_LOGS" envDefault:"logs_pix"`
	Renewals       string `env:"RENEWALS" envDefault:"renovacoes_pendentes"`
	BillPayments   string `env:"BILL_PAYMENTS" envDefault:"solicitacoes_pagamento"`
}

type Payments struct {
	Provider string `env:"PAYMENT_PROVIDER" envDefault:"webhook"`
	Mock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`

	GenerateURL string `env:"PIX_WEBHOOK_GENERATE_URL"`
	PaidURL     string `env:"PIX_WEBHOOK_PAID_URL"`
	VerifyURL   string `env:"PIX_WEBHOOK_VERIFY_URL"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoPayerEmail  string `env:"MERCADOPAGO_PAYER_EMAIL" envDefault:"cliente@painelmaster.com.br"`
}

type Session struct {
	Secret string `env:"SESSION_SECRET"`
	MaxAge int    `env:"SESSION_MAX_AGE" envDefault:"604800"`
	Secure bool   `env:"SESSION_SECURE" envDefault:"false"`
}

type Auth struct {
	HashPasswords bool `env:"AUTH_HASH_PASSWORDS" envDefault:"false"`
}

type Panel struct {
	ClientURL string `env:"CLIENT_URL" envDefault:"http://localhost:5173/"`
	Timezone  string `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
}

// Load parses the process environment. A .env file, when present, has already
// been merged by godotenv/autoload in main.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	cfg.Payments.Provider = strings.ToLower(strings.TrimSpace(cfg.Payments.Provider))
	return cfg, nil
}

// Location resolves the panel timezone; due dates are civil dates in it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Panel.Timezone)
	if err != nil {
		log.Printf("[config] unknown timezone %q, falling back to UTC err=%v", c.Panel.Timezone, err)
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment.Name, "production")
}
