package pricing

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/memorablecontact/presales/lib/myerrors"
	"github.com/memorablecontact/presales/lib/mylog"
	"github.com/memorablecontact/presales/lib/mymetrics"
	"github.com/memorablecontact/presales/services/catalog"
	"github.com/memorablecontact/presales/services/checkout"
)

type service struct {
	logger     mylog.Logger
	catalog    *catalog.Catalog
	checkouter Checkouter
}

func newService(logger mylog.Logger, cat *catalog.Catalog, checkouter Checkouter) *service {
	return &service{
		logger:     logger,
		catalog:    cat,
		checkouter: checkouter,
	}
}

func (s *service) pricingPage(locale catalog.Locale) pricingPageInfo {
	return pricingPageInfo{
		Lang:      locale,
		OtherLang: s.otherLocale(locale),
		Copy:      copyFor(locale),
		Plans:     s.catalog.Plans(locale),
	}
}

// otherLocale is the first supported locale that is not the current one.
func (s *service) otherLocale(locale catalog.Locale) catalog.Locale {
	for _, l := range s.catalog.Locales() {
		if l != locale {
			return l
		}
	}
	return locale
}

// startPlanCheckout returns where the visitor goes next. Free plans stay on
// the pricing page without any checkout.
func (s *service) startPlanCheckout(c context.Context, planID catalog.PlanID, locale catalog.Locale, origin string) (string, error) {
	plan, found := s.catalog.Plan(locale, planID)
	if !found {
		return "", myerrors.NewNotFoundError(fmt.Errorf("plan %s not found", planID))
	}

	mymetrics.IncPlanSelection(string(planID), string(locale))

	if plan.IsFree() {
		s.logger.Log(c, string(planID), mylog.SeverityInfo, "Free plan %s chosen, no checkout needed", planID)
		return pricingURL(locale), nil
	}

	amount, err := plan.Amount()
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("plan %s has no price: %s", planID, err))
	}

	session, err := s.checkouter.CreateCheckoutSession(c, checkout.Request{
		Amount: strconv.FormatInt(amount, 10),
		Lang:   string(locale),
		Origin: origin,
	})
	if err != nil {
		return "", err
	}

	s.logger.Log(c, string(planID), mylog.SeverityInfo, "Redirect to checkout session %s for plan %s", session.ID, planID)

	return session.URL, nil
}

func pricingURL(locale catalog.Locale) string {
	return "/pricing?" + url.Values{"lang": []string{string(locale)}}.Encode()
}
