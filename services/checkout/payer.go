package checkout

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/memorablecontact/presales/lib/myconfig"
)

//go:generate mockgen -source=payer.go -package checkout -destination payer_mock.go Payer
type Payer interface {
	CreateCheckoutSession(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
}

type stripePayer struct {
	api *client.API
}

// NewPayer creates a Stripe client that owns its key, so nothing depends on
// the package-global stripe.Key. Network retries are disabled: one request
// per checkout.
func NewPayer(cfg myconfig.Config) Payer {
	backendConfig := &stripe.BackendConfig{
		HTTPClient: &http.Client{
			Timeout: cfg.Checkout.ProviderTimeout + time.Second,
		},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if cfg.Stripe.APIURL != "" {
		backendConfig.URL = stripe.String(cfg.Stripe.APIURL)
	}

	return &stripePayer{
		api: client.New(cfg.Stripe.SecretKey, &stripe.Backends{
			API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
			Connect: stripe.GetBackend(stripe.ConnectBackend),
			Uploads: stripe.GetBackend(stripe.UploadsBackend),
		}),
	}
}

func (p *stripePayer) CreateCheckoutSession(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	params.Context = ctx

	session, err := p.api.CheckoutSessions.New(&params)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}

	return *session, nil
}
