package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/memorablecontact/presales/lib/mycontext"
	"github.com/memorablecontact/presales/lib/myhttp"
	"github.com/memorablecontact/presales/lib/mylog"
)

const maxBodySize = 64 * 1024

type webService struct {
	logger  mylog.Logger
	service *Service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(service *Service) *webService {
	return &webService{
		logger:  mylog.New("checkout"),
		service: service,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	for _, path := range []string{"/checkout", "/api/checkout"} {
		router.HandleFunc(path, s.statusPage()).Methods("GET")
		router.HandleFunc(path, s.createCheckoutSession()).Methods("POST")
	}
}

// statusPage tells that the endpoint is reachable, without touching the provider.
func (s *webService) statusPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, StatusResponse{
			Status:  "active",
			Message: "Stripe API route is reachable",
		})
	}
}

func (s *webService) createCheckoutSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		// An unreadable body carries no amount; the service reports that.
		req, err := parseRequest(r)
		if err != nil {
			s.logger.Log(c, "", mylog.SeverityWarn, "Error parsing checkout request: %s", err)
		}

		session, err := s.service.CreateCheckoutSession(c, req)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, CheckoutResponse{
			URL: session.URL,
		})
	}
}

type jsonBody struct {
	Amount json.RawMessage `json:"amount"`
	Lang   json.RawMessage `json:"lang"`
}

type formBody struct {
	Amount string `form:"amount"`
	Lang   string `form:"lang"`
}

func parseRequest(r *http.Request) (Request, error) {
	req := Request{
		Origin: r.Header.Get("Origin"),
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		r.Body = io.NopCloser(io.LimitReader(r.Body, maxBodySize))
		err := r.ParseForm()
		if err != nil {
			return req, fmt.Errorf("error parsing form: %s", err)
		}

		body := formBody{}
		err = formcodec.NewDecoder().Decode(&body, r.PostForm)
		if err != nil {
			return req, fmt.Errorf("error decoding form: %s", err)
		}
		req.Amount = body.Amount
		req.Lang = body.Lang

		return req, nil
	}

	body := jsonBody{}
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&body)
	if err != nil {
		return req, fmt.Errorf("error decoding json: %s", err)
	}
	req.Amount = jsonText(body.Amount)
	req.Lang = jsonText(body.Lang)

	return req, nil
}

// jsonText renders a loosely typed json value as text: strings lose their
// quotes, numbers keep their literal digits, null and false become empty.
func jsonText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("false")) {
		return ""
	}

	var s string
	if json.Unmarshal(trimmed, &s) == nil {
		return s
	}

	return string(trimmed)
}
