// Package myconfig holds the process-wide configuration. It is read once at
// startup and injected into the services; nothing re-reads the environment
// while serving requests.
package myconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Stripe   StripeConfig
	Checkout CheckoutConfig
}

type HTTPConfig struct {
	Port            string        `env:"PORT" env-default:"8080" env-description:"Port the webserver listens on"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s" env-description:"Time granted to in-flight requests on shutdown"`
}

type StripeConfig struct {
	SecretKey string `env:"STRIPE_SECRET_KEY" env-description:"Secret key of the Stripe account"`
	APIURL    string `env:"STRIPE_API_URL" env-description:"Overrides the Stripe API base url, e.g. for stripe-mock"`
}

type CheckoutConfig struct {
	FallbackOrigin  string        `env:"CHECKOUT_FALLBACK_ORIGIN" env-default:"http://localhost:3000" env-description:"Origin used for redirect urls when the request carries none"`
	Currency        string        `env:"CHECKOUT_CURRENCY" env-default:"eur" env-description:"Currency of every checkout session"`
	ProductName     string        `env:"CHECKOUT_PRODUCT_NAME" env-default:"Memorable Contact Presales" env-description:"Label of the single line item"`
	ProviderTimeout time.Duration `env:"CHECKOUT_PROVIDER_TIMEOUT" env-default:"10s" env-description:"Upper bound of a single call to the payment provider"`
}

// HasStripeKey tells whether a provider credential was configured. A missing
// key is not fatal for the process: checkout requests report it instead.
func (c Config) HasStripeKey() bool {
	return c.Stripe.SecretKey != ""
}

// Load reads an optional .env file followed by the process environment.
// Variables already present in the environment win over the .env file.
func Load(envFiles ...string) (Config, error) {
	err := godotenv.Load(envFiles...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading env file: %s", err)
	}

	cfg := Config{}
	err = cleanenv.ReadEnv(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config from environment: %s", err)
	}

	return cfg, nil
}

// Usage describes all supported environment variables.
func Usage() string {
	description, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return err.Error()
	}
	return description
}
