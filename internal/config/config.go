package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

var (
	defaultTaxRate            = decimal.RequireFromString("0.0825")
	defaultDiscountPercentage = decimal.Zero
)

// Pricing holds the rates applied by the estimate calculator.
//
// Both are decimal fractions: TaxRate 0.0825 means 8.25%.
type Pricing struct {
	TaxRate            decimal.Decimal
	DiscountPercentage decimal.Decimal
}

// DefaultPricing returns TAX_RATE=0.0825 and DISCOUNT_PERCENTAGE=0.
func DefaultPricing() Pricing {
	return Pricing{TaxRate: defaultTaxRate, DiscountPercentage: defaultDiscountPercentage}
}

func (p Pricing) Validate() error {
	if p.TaxRate.IsNegative() {
		return errors.New("TAX_RATE must not be negative")
	}
	if p.DiscountPercentage.IsNegative() || p.DiscountPercentage.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("DISCOUNT_PERCENTAGE must be between 0 and 1")
	}
	return nil
}

type Tables struct {
	Organizations string
	Services      string
	Modifiers     string
	Clients       string
	Assessments   string
	Payments      string
}

// Payments configures the Mercado Pago integration. TestPayerEmail and
// TestPayerUserID only matter with sandbox (TEST-) access tokens.
type Payments struct {
	AccessToken     string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

// Sandbox reports whether AccessToken is a Mercado Pago test credential.
func (p Payments) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.AccessToken), "TEST-")
}

type Config struct {
	Env           string
	Port          int
	StorageDriver string
	DatabaseURL   string
	SQLitePath    string

	AWSRegion        string
	DynamoDBEndpoint string
	Tables           Tables

	Pricing Pricing

	AdminUserID   string
	AuthJWTSecret string

	Payments Payments
}

// Load reads the configuration from the environment. Values from a .env file are
// already present when cmd/api imports godotenv/autoload.
func Load() (Config, error) {
	cfg := Config{
		Env:              getenvDefault("APP_ENV", "development"),
		StorageDriver:    strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SQLitePath:       getenvDefault("SQLITE_PATH", "./data/detailshop.db"),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		Tables: Tables{
			Organizations: getenvDefault("ORGANIZATIONS_TABLE", "organizations"),
			Services:      getenvDefault("SERVICES_TABLE", "services"),
			Modifiers:     getenvDefault("MODIFIERS_TABLE", "modifiers"),
			Clients:       getenvDefault("CLIENTS_TABLE", "clients"),
			Assessments:   getenvDefault("ASSESSMENTS_TABLE", "assessments"),
			Payments:      getenvDefault("PAYMENTS_TABLE", "assessment_payments"),
		},
		AdminUserID:   strings.TrimSpace(os.Getenv("ADMIN_USER_ID")),
		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		Payments: Payments{
			AccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:            isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
			TestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
	}

	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return cfg, fmt.Errorf("invalid PORT: %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	cfg.Pricing = DefaultPricing()
	if cfg.Pricing.TaxRate, err = getenvDecimal("TAX_RATE", defaultTaxRate); err != nil {
		return cfg, err
	}
	if cfg.Pricing.DiscountPercentage, err = getenvDecimal("DISCOUNT_PERCENTAGE", defaultDiscountPercentage); err != nil {
		return cfg, err
	}
	if err := cfg.Pricing.Validate(); err != nil {
		return cfg, err
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageSQLite:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return cfg, errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		return cfg, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvDecimal(key string, def decimal.Decimal) (decimal.Decimal, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
