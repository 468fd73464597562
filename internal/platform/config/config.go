package config

import (
	"encoding/json"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// CreditPack is one purchasable bundle of AI credits.
type CreditPack struct {
	PriceID   string          `json:"price_id"`
	AmountUSD decimal.Decimal `json:"amount_usd"`
	Credits   int64           `json:"credits"`
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Session tokens minted by the hosted auth provider
	SessionJWTSecret string

	// Payment provider
	StripeSecretKey     string
	StripeWebhookSecret string

	// AI provider
	OpenAIAPIKey string
	OpenAIModel  string
	AITimeout    time.Duration

	FrontendBaseURL string
	PostHogAPIKey   string
	RedisAddr       string

	CreditPacks []CreditPack
}

// defaultCreditPacks mirrors the packs offered on the pricing page.
func defaultCreditPacks() []CreditPack {
	return []CreditPack{
		{PriceID: "price_starter", AmountUSD: decimal.NewFromFloat(5.99), Credits: 10},
		{PriceID: "price_plus", AmountUSD: decimal.NewFromFloat(9.99), Credits: 25},
		{PriceID: "price_pro", AmountUSD: decimal.NewFromFloat(19.99), Credits: 60},
	}
}

// parseCreditPacks decodes the CREDIT_PACKS JSON array. An empty string means
// the default catalog.
func parseCreditPacks(raw string) ([]CreditPack, error) {
	if raw == "" {
		return defaultCreditPacks(), nil
	}
	var packs []CreditPack
	if err := json.Unmarshal([]byte(raw), &packs); err != nil {
		return nil, err
	}
	return packs, nil
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("SESSION_JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("AI_TIMEOUT", "30s")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("CREDIT_PACKS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.SessionJWTSecret = viper.GetString("SESSION_JWT_SECRET")
	if cfg.SessionJWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: SESSION_JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.StripeSecretKey = viper.GetString("STRIPE_SECRET_KEY")
	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set. Credit purchases will not function.")
	}
	cfg.StripeWebhookSecret = viper.GetString("STRIPE_WEBHOOK_SECRET")
	if cfg.StripeWebhookSecret == "" {
		log.Println("Warning: STRIPE_WEBHOOK_SECRET not set. Payment webhooks will be rejected.")
	}

	cfg.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set. AI analysis will not function.")
	}
	cfg.OpenAIModel = viper.GetString("OPENAI_MODEL")

	aiTimeoutStr := viper.GetString("AI_TIMEOUT")
	aiTimeout, err := time.ParseDuration(aiTimeoutStr)
	if err != nil {
		aiTimeout = 30 * time.Second
		if aiTimeoutStr != "" {
			log.Printf("Warning: Invalid value for AI_TIMEOUT ('%s'). Defaulting to %s.\n", aiTimeoutStr, aiTimeout.String())
		}
	}
	cfg.AITimeout = aiTimeout

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.PostHogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")

	packs, err := parseCreditPacks(viper.GetString("CREDIT_PACKS"))
	if err != nil {
		log.Printf("Warning: Invalid value for CREDIT_PACKS (%v). Using default packs.\n", err)
		packs = defaultCreditPacks()
	}
	cfg.CreditPacks = packs

	return cfg, nil
}

// PackByPriceID looks up a credit pack by its price id. The second return
// is false when the id is not offered.
func (c *Config) PackByPriceID(priceID string) (CreditPack, bool) {
	for _, p := range c.CreditPacks {
		if p.PriceID == priceID {
			return p, true
		}
	}
	return CreditPack{}, false
}
