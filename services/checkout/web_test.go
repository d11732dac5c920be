package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/mock/gomock"

	"github.com/memorablecontact/presales/lib/myconfig"
)

var sessionResp = stripe.CheckoutSession{
	ID:       "cs_test_123",
	URL:      "https://checkout.stripe.com/c/pay/cs_test_123",
	Metadata: map[string]string{"product": "memorable_contact", "type": "presales", "lang": "en"},
}

func TestCheckoutService(t *testing.T) {

	t.Run("Report endpoint is reachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, _ := setup(t, ctrl, "sk_test_123")

		// when
		response := doRequest(t, router, http.MethodGet, "/checkout", "", nil)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"active","message":"Stripe API route is reachable"}`, response.Body.String())
	})

	t.Run("Create checkout session", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, payer := setup(t, ctrl, "sk_test_123")

		// given
		var got stripe.CheckoutSessionParams
		payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
				got = params
				return sessionResp, nil
			})

		// when
		response := doRequest(t, router, http.MethodPost, "/checkout", `{"amount":19,"lang":"fr"}`, map[string]string{
			"Content-Type": "application/json",
			"Origin":       "https://memorablecontact.com",
		})

		// then
		assert.Equal(t, 200, response.Code)
		assert.Equal(t, map[string]string{"url": "https://checkout.stripe.com/c/pay/cs_test_123"}, decodeBody(t, response))

		assert.Equal(t, []*string{stripe.String("card")}, got.PaymentMethodTypes)
		assert.Equal(t, string(stripe.CheckoutSessionModePayment), *got.Mode)
		assert.Len(t, got.LineItems, 1)
		assert.Equal(t, int64(1), *got.LineItems[0].Quantity)
		assert.Equal(t, int64(1900), *got.LineItems[0].PriceData.UnitAmount)
		assert.Equal(t, "eur", *got.LineItems[0].PriceData.Currency)
		assert.Equal(t, "Memorable Contact Presales", *got.LineItems[0].PriceData.ProductData.Name)
		assert.Equal(t, "https://memorablecontact.com/presales-success", *got.SuccessURL)
		assert.Equal(t, "https://memorablecontact.com/presales-cancel", *got.CancelURL)
		assert.Equal(t, map[string]string{"product": "memorable_contact", "type": "presales", "lang": "fr"}, got.Metadata)
		assert.Equal(t, map[string]string{"product": "memorable_contact", "type": "presales"}, got.PaymentIntentData.Metadata)
	})

	t.Run("Same routes under api prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, payer := setup(t, ctrl, "sk_test_123")

		// given
		payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(sessionResp, nil)

		// when
		status := doRequest(t, router, http.MethodGet, "/api/checkout", "", nil)
		response := doRequest(t, router, http.MethodPost, "/api/checkout", `{"amount":49}`, nil)

		// then
		assert.Equal(t, 200, status.Code)
		assert.Equal(t, 200, response.Code)
		assert.True(t, strings.HasPrefix(decodeBody(t, response)["url"], "https://checkout.stripe.com/"))
	})

	t.Run("Convert amount to minor units", func(t *testing.T) {
		testCases := []struct {
			body       string
			unitAmount int64
		}{
			{body: `{"amount":19}`, unitAmount: 1900},
			{body: `{"amount":49}`, unitAmount: 4900},
			{body: `{"amount":19.995}`, unitAmount: 2000},
			{body: `{"amount":19.994}`, unitAmount: 1999},
			{body: `{"amount":0.015}`, unitAmount: 2},
			{body: `{"amount":"19"}`, unitAmount: 1900},
			{body: `{"amount":1e2}`, unitAmount: 10000},
		}
		for _, tc := range testCases {
			t.Run(tc.body, func(t *testing.T) {
				ctrl := gomock.NewController(t)

				// setup
				router, payer := setup(t, ctrl, "sk_test_123")

				// given
				payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
						assert.Equal(t, tc.unitAmount, *params.LineItems[0].PriceData.UnitAmount)
						return sessionResp, nil
					})

				// when
				response := doRequest(t, router, http.MethodPost, "/checkout", tc.body, nil)

				// then
				assert.Equal(t, 200, response.Code)
			})
		}
	})

	t.Run("Reject invalid amount without calling provider", func(t *testing.T) {
		for _, body := range []string{
			`{}`,
			`{"lang":"en"}`,
			`{"amount":null}`,
			`{"amount":"abc"}`,
			`{"amount":""}`,
			`{"amount":0}`,
			`{"amount":0.001}`,
			`{"amount":-19}`,
			`{"amount":false}`,
			`{"amount":true}`,
			`{"amount":"NaN"}`,
			`{"amount":"Infinity"}`,
			`{"amount":[19]}`,
			`{"amount":{"value":19}}`,
			`{"amount":1e400}`,
			`{"amount":1e40000000}`,
			`{"amount":"1e-40000000"}`,
			`{"amount":"0.` + strings.Repeat("0", 40) + `1"}`,
			`{"amount":`,
			`not json`,
			``,
		} {
			t.Run(body, func(t *testing.T) {
				ctrl := gomock.NewController(t)

				// setup
				router, _ := setup(t, ctrl, "sk_test_123")

				// when
				started := time.Now()
				response := doRequest(t, router, http.MethodPost, "/checkout", body, nil)

				// then
				assert.Less(t, time.Since(started), time.Second)
				assert.Equal(t, 400, response.Code)
				assert.Equal(t, map[string]string{"error": "Invalid amount"}, decodeBody(t, response))
			})
		}
	})

	t.Run("Missing credential wins over amount validation", func(t *testing.T) {
		for _, body := range []string{`{"amount":19}`, `{"amount":"abc"}`, `{}`, `not json`} {
			t.Run(body, func(t *testing.T) {
				ctrl := gomock.NewController(t)

				// setup
				router, _ := setup(t, ctrl, "")

				// when
				response := doRequest(t, router, http.MethodPost, "/checkout", body, nil)

				// then
				assert.Equal(t, 500, response.Code)
				assert.Equal(t, map[string]string{"error": "Stripe API key is not configured"}, decodeBody(t, response))
			})
		}
	})

	t.Run("Pass lang as metadata", func(t *testing.T) {
		testCases := []struct {
			name string
			body string
			lang string
		}{
			{name: "Omitted", body: `{"amount":19}`, lang: "en"},
			{name: "Empty", body: `{"amount":19,"lang":""}`, lang: "en"},
			{name: "Null", body: `{"amount":19,"lang":null}`, lang: "en"},
			{name: "French", body: `{"amount":19,"lang":"fr"}`, lang: "fr"},
			{name: "Unrecognized", body: `{"amount":19,"lang":"de-CH"}`, lang: "de-CH"},
			{name: "Not a string", body: `{"amount":19,"lang":5}`, lang: "5"},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)

				// setup
				router, payer := setup(t, ctrl, "sk_test_123")

				// given
				payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
						assert.Equal(t, tc.lang, params.Metadata["lang"])
						_, found := params.PaymentIntentData.Metadata["lang"]
						assert.False(t, found)
						return sessionResp, nil
					})

				// when
				response := doRequest(t, router, http.MethodPost, "/checkout", tc.body, nil)

				// then
				assert.Equal(t, 200, response.Code)
			})
		}
	})

	t.Run("Pass long lang unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, payer := setup(t, ctrl, "sk_test_123")

		// given
		lang := strings.Repeat("x", 200)
		payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
				assert.Equal(t, lang, params.Metadata["lang"])
				return sessionResp, nil
			})

		// when
		response := doRequest(t, router, http.MethodPost, "/checkout", `{"amount":19,"lang":"`+lang+`"}`, nil)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Use fallback origin", func(t *testing.T) {
		for _, origin := range []string{"", "null"} {
			t.Run("origin="+origin, func(t *testing.T) {
				ctrl := gomock.NewController(t)

				// setup
				router, payer := setup(t, ctrl, "sk_test_123")

				// given
				payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
						assert.Equal(t, "http://localhost:3000/presales-success", *params.SuccessURL)
						assert.Equal(t, "http://localhost:3000/presales-cancel", *params.CancelURL)
						return sessionResp, nil
					})

				// when
				response := doRequest(t, router, http.MethodPost, "/checkout", `{"amount":19}`, map[string]string{"Origin": origin})

				// then
				assert.Equal(t, 200, response.Code)
			})
		}
	})

	t.Run("Accept form encoded body", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, payer := setup(t, ctrl, "sk_test_123")

		// given
		payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
				assert.Equal(t, int64(4900), *params.LineItems[0].PriceData.UnitAmount)
				assert.Equal(t, "fr", params.Metadata["lang"])
				return sessionResp, nil
			})

		// when
		response := doRequest(t, router, http.MethodPost, "/checkout", `amount=49&lang=fr`, map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
		})

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Bound provider call in time", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		// setup
		router, payer := setup(t, ctrl, "sk_test_123")

		// given
		payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
				deadline, found := ctx.Deadline()
				assert.True(t, found)
				assert.WithinDuration(t, time.Now().Add(10*time.Second), deadline, time.Second)
				return sessionResp, nil
			})

		// when
		response := doRequest(t, router, http.MethodPost, "/checkout", `{"amount":19}`, nil)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Sanitize provider errors", func(t *testing.T) {
		testCases := []struct {
			name        string
			providerErr error
			message     string
		}{
			{
				name:        "Invalid request",
				providerErr: &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: 400, Msg: "Invalid currency: xyz; secret internals"},
				message:     "Payment provider rejected the checkout request",
			},
			{
				name:        "Wrong api key",
				providerErr: &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: 401, Msg: "Invalid API Key provided: sk_test_***123; secret internals"},
				message:     "Payment provider rejected the configured credentials",
			},
			{
				name:        "Rate limited",
				providerErr: &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: 429, Msg: "Too many requests; secret internals"},
				message:     "Payment provider is busy, please try again",
			},
			{
				name:        "Provider failure",
				providerErr: &stripe.Error{Type: stripe.ErrorTypeAPI, HTTPStatusCode: 500, Msg: "secret internals"},
				message:     "Payment provider is unavailable",
			},
			{
				name:        "Network failure",
				providerErr: errors.New("dial tcp 10.0.0.1:443: connect: secret internals"),
				message:     "Payment provider is unavailable",
			},
			{
				name:        "Timeout",
				providerErr: context.DeadlineExceeded,
				message:     "Payment provider is unavailable",
			},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)

				// setup
				router, payer := setup(t, ctrl, "sk_test_123")

				// given
				payer.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(stripe.CheckoutSession{}, tc.providerErr)

				// when
				response := doRequest(t, router, http.MethodPost, "/checkout", `{"amount":19}`, nil)

				// then
				assert.Equal(t, 500, response.Code)
				assert.Equal(t, map[string]string{"error": tc.message}, decodeBody(t, response))
				assert.NotContains(t, response.Body.String(), "secret internals")
			})
		}
	})
}

func setup(t *testing.T, ctrl *gomock.Controller, apiKey string) (*mux.Router, *MockPayer) {
	c := context.TODO()
	payer := NewMockPayer(ctrl)

	sut := NewWebService(NewService(testConfig(apiKey), payer))
	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	return router, payer
}

func testConfig(apiKey string) myconfig.Config {
	return myconfig.Config{
		Stripe: myconfig.StripeConfig{
			SecretKey: apiKey,
		},
		Checkout: myconfig.CheckoutConfig{
			FallbackOrigin:  "http://localhost:3000",
			Currency:        "EUR",
			ProductName:     "Memorable Contact Presales",
			ProviderTimeout: 10 * time.Second,
		},
	}
}

func doRequest(t *testing.T, router *mux.Router, method string, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(method, path, strings.NewReader(body))
	assert.NoError(t, err)
	request.Host = "localhost:8888"
	for k, v := range headers {
		request.Header.Set(k, v)
	}
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func decodeBody(t *testing.T, response *httptest.ResponseRecorder) map[string]string {
	body := map[string]string{}
	err := json.Unmarshal(response.Body.Bytes(), &body)
	assert.NoError(t, err)
	return body
}
