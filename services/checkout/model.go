package checkout

const (
	productID       = "memorable_contact"
	transactionType = "presales"
	defaultLang     = "en"

	SuccessPath = "/presales-success"
	CancelPath  = "/presales-cancel"
)

// Messages returned to callers. They are stable and machine readable.
const (
	MsgNotConfigured    = "Stripe API key is not configured"
	MsgInvalidAmount    = "Invalid amount"
	MsgProviderRejected = "Payment provider rejected the checkout request"
	MsgProviderAuth     = "Payment provider rejected the configured credentials"
	MsgProviderBusy     = "Payment provider is busy, please try again"
	MsgProviderDown     = "Payment provider is unavailable"
)

// Request is a purchase intent as received from a client. Amount is kept in
// its textual form so it can be converted to minor units without going
// through a binary float.
type Request struct {
	Amount string
	Lang   string
	Origin string
}

// Session is the hosted payment page issued by the provider.
type Session struct {
	ID       string
	URL      string
	Metadata map[string]string
}

type checkoutRequest struct {
	Amount     float64 `validate:"gt=0,finite"`
	UnitAmount int64   `validate:"gt=0"`
	Lang       string
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}
