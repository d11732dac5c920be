package pricing

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/memorablecontact/presales/lib/mycontext"
	"github.com/memorablecontact/presales/lib/myerrors"
	"github.com/memorablecontact/presales/lib/myhttp"
	"github.com/memorablecontact/presales/lib/mylog"
	"github.com/memorablecontact/presales/services/catalog"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(cat *catalog.Catalog, checkouter Checkouter) *webService {
	logger := mylog.New("pricing")
	return &webService{
		logger:  logger,
		service: newService(logger, cat, checkouter),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/", s.homePage()).Methods("GET")
	router.HandleFunc("/pricing", s.pricingPage()).Methods("GET")
	router.HandleFunc("/pricing/{planID}/checkout", s.planCheckout()).Methods("POST")
}

//go:embed templates
var templateFolder embed.FS
var (
	pricingPageTemplate *template.Template
	errorPageTemplate   *template.Template
)

func init() {
	pricingPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/pricing.html"))
	errorPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/error.html"))
}

func (s *webService) homePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/pricing", http.StatusSeeOther)
	}
}

func (s *webService) pricingPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		locale := catalog.ParseLocale(r.URL.Query().Get("lang"))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := pricingPageTemplate.Execute(w, s.service.pricingPage(locale))
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) planCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		planID := catalog.PlanID(mux.Vars(r)["planID"])

		form := planCheckoutForm{}
		err := r.ParseForm()
		if err == nil {
			err = formcodec.NewDecoder().Decode(&form, r.PostForm)
		}
		if err != nil {
			s.writeErrorPage(c, w, catalog.DefaultLocale, myerrors.NewInvalidInputError(err))
			return
		}
		locale := catalog.ParseLocale(form.Lang)

		redirectURL, err := s.service.startPlanCheckout(c, planID, locale, myhttp.HostnameWithScheme(r))
		if err != nil {
			s.writeErrorPage(c, w, locale, err)
			return
		}

		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
	}
}

// writeErrorPage is the single way checkout failures reach the visitor: one
// localized message, whatever went wrong. Details only go to the log.
func (s *webService) writeErrorPage(c context.Context, w http.ResponseWriter, locale catalog.Locale, err error) {
	httpStatus := myerrors.GetHTTPStatus(err)
	s.logger.Log(c, "", mylog.SeverityWarn, "Error page: http-status:%d, error-msg:%s", httpStatus, err)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(httpStatus)
	err = errorPageTemplate.Execute(w, errorPageInfo{
		Lang: locale,
		Copy: copyFor(locale),
	})
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error rendering error page: %s", err)
	}
}
