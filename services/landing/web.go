package landing

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/memorablecontact/presales/lib/mycontext"
	"github.com/memorablecontact/presales/lib/myerrors"
	"github.com/memorablecontact/presales/lib/myhttp"
	"github.com/memorablecontact/presales/lib/mylog"
	"github.com/memorablecontact/presales/services/checkout"
)

type webService struct {
	logger mylog.Logger
}

// The pages only acknowledge where the provider sent the visitor. They do not
// verify that a payment took place.
func NewWebService() *webService {
	return &webService{
		logger: mylog.New("landing"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc(checkout.SuccessPath, s.staticPage(successPageTemplate)).Methods("GET")
	router.HandleFunc(checkout.CancelPath, s.staticPage(cancelPageTemplate)).Methods("GET")
}

//go:embed templates
var templateFolder embed.FS
var (
	successPageTemplate *template.Template
	cancelPageTemplate  *template.Template
)

func init() {
	successPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/layout.html", "templates/success.html"))
	cancelPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/layout.html", "templates/cancel.html"))
}

func (s *webService) staticPage(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := tmpl.ExecuteTemplate(w, "layout", nil)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}
