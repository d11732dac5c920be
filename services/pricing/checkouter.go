package pricing

import (
	"context"

	"github.com/memorablecontact/presales/services/checkout"
)

//go:generate mockgen -source=checkouter.go -package pricing -destination checkouter_mock.go Checkouter
type Checkouter interface {
	CreateCheckoutSession(c context.Context, req checkout.Request) (checkout.Session, error)
}
