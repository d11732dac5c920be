package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v74"

	"github.com/memorablecontact/presales/lib/myconfig"
	"github.com/memorablecontact/presales/lib/myerrors"
	"github.com/memorablecontact/presales/lib/mylog"
	"github.com/memorablecontact/presales/lib/mymetrics"
	"github.com/memorablecontact/presales/lib/myvalidator"
)

type Service struct {
	logger          mylog.Logger
	payer           Payer
	validator       *myvalidator.Validator
	configured      bool
	currency        string
	productName     string
	fallbackOrigin  string
	providerTimeout time.Duration
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(cfg myconfig.Config, payer Payer) *Service {
	return &Service{
		logger:          mylog.New("checkout"),
		payer:           payer,
		validator:       myvalidator.New(),
		configured:      cfg.HasStripeKey(),
		currency:        strings.ToLower(cfg.Checkout.Currency),
		productName:     cfg.Checkout.ProductName,
		fallbackOrigin:  cfg.Checkout.FallbackOrigin,
		providerTimeout: cfg.Checkout.ProviderTimeout,
	}
}

// CreateCheckoutSession asks the provider for a hosted payment page for a
// one-time payment of the requested amount. Every call creates a new session,
// identical requests are not deduplicated.
func (s *Service) CreateCheckoutSession(c context.Context, req Request) (Session, error) {
	if !s.configured {
		s.logger.Log(c, "", mylog.SeverityError, "STRIPE_SECRET_KEY is missing from the configuration")
		mymetrics.IncCheckoutSession(mymetrics.OutcomeNotConfigured)
		return Session{}, myerrors.NewInternalError(errors.New("stripe secret key not configured")).WithPublicMessage(MsgNotConfigured)
	}

	validated, err := s.validate(req)
	if err != nil {
		mymetrics.IncCheckoutSession(mymetrics.OutcomeInvalidAmount)
		return Session{}, err
	}

	params := s.sessionParams(validated, originOrFallback(req.Origin, s.fallbackOrigin))

	s.logger.Log(c, validated.Lang, mylog.SeverityInfo, "Start checkout of %d %s minor units", validated.UnitAmount, s.currency)

	ctx, cancel := context.WithTimeout(c, s.providerTimeout)
	defer cancel()

	started := time.Now()
	session, err := s.payer.CreateCheckoutSession(ctx, params)
	mymetrics.ObserveProviderLatency(time.Since(started), err == nil)
	if err != nil {
		s.logger.Log(c, validated.Lang, mylog.SeverityError, "Error creating stripe session: %s", err)
		mymetrics.IncCheckoutSession(mymetrics.OutcomeProviderError)
		return Session{}, providerError(err)
	}

	s.logger.Log(c, validated.Lang, mylog.SeverityInfo, "Created checkout session %s", session.ID)
	mymetrics.IncCheckoutSession(mymetrics.OutcomeCreated)

	return Session{
		ID:       session.ID,
		URL:      session.URL,
		Metadata: session.Metadata,
	}, nil
}

func (s *Service) validate(req Request) (checkoutRequest, error) {
	amount, unitAmount, err := toMinorUnits(req.Amount)
	if err != nil {
		return checkoutRequest{}, myerrors.NewInvalidInputError(err).WithPublicMessage(MsgInvalidAmount)
	}

	lang := req.Lang
	if lang == "" {
		lang = defaultLang
	}

	validated := checkoutRequest{
		Amount:     amount.InexactFloat64(),
		UnitAmount: unitAmount,
		Lang:       lang,
	}
	err = s.validator.Struct(validated)
	if err != nil {
		return checkoutRequest{}, myerrors.NewInvalidInputError(fmt.Errorf("amount '%s' rejected: %s", req.Amount, err)).WithPublicMessage(MsgInvalidAmount)
	}

	return validated, nil
}

func (s *Service) sessionParams(req checkoutRequest, origin string) stripe.CheckoutSessionParams {
	params := stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(s.productName),
					},
					UnitAmount: stripe.Int64(req.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(origin + SuccessPath),
		CancelURL:  stripe.String(origin + CancelPath),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"product": productID,
				"type":    transactionType,
			},
		},
	}
	params.AddMetadata("product", productID)
	params.AddMetadata("type", transactionType)
	params.AddMetadata("lang", req.Lang)

	return params
}

func originOrFallback(origin string, fallback string) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" || origin == "null" {
		return strings.TrimRight(fallback, "/")
	}
	return origin
}

// providerError hides the provider's own wording from the caller. The http
// status stays 500 for every provider failure.
func providerError(err error) error {
	msg := MsgProviderDown

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.HTTPStatusCode == http.StatusUnauthorized || stripeErr.HTTPStatusCode == http.StatusForbidden:
			msg = MsgProviderAuth
		case stripeErr.HTTPStatusCode == http.StatusTooManyRequests:
			msg = MsgProviderBusy
		case stripeErr.Type == stripe.ErrorTypeCard || stripeErr.Type == stripe.ErrorTypeInvalidRequest:
			msg = MsgProviderRejected
		}
	}

	return myerrors.NewInternalError(fmt.Errorf("error creating stripe session: %w", err)).WithPublicMessage(msg)
}
