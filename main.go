package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/memorablecontact/presales/lib/myconfig"
	"github.com/memorablecontact/presales/lib/mylog"
	"github.com/memorablecontact/presales/lib/mymetrics"
	"github.com/memorablecontact/presales/services/catalog"
	"github.com/memorablecontact/presales/services/checkout"
	"github.com/memorablecontact/presales/services/landing"
	"github.com/memorablecontact/presales/services/pricing"
)

func main() {
	showUsage := flag.Bool("usage", false, "print supported environment variables and exit")
	flag.Parse()
	if *showUsage {
		fmt.Println(myconfig.Usage())
		return
	}

	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := mylog.New("main")

	cfg, err := myconfig.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}
	if !cfg.HasStripeKey() {
		// Keep serving: checkout requests report the misconfiguration themselves.
		logger.Log(c, "", mylog.SeverityError, "STRIPE_SECRET_KEY is missing from environment variables")
	}

	presalesCatalog := catalog.New()
	err = presalesCatalog.CheckCurrency(cfg.Checkout.Currency)
	if err != nil {
		log.Fatalf("Error in configuration: %s", err)
	}

	router := mux.NewRouter()

	checkoutService := checkout.NewService(cfg, checkout.NewPayer(cfg))
	checkout.NewWebService(checkoutService).RegisterEndpoints(c, router)

	pricing.NewWebService(presalesCatalog, checkoutService).RegisterEndpoints(c, router)

	landing.NewWebService().RegisterEndpoints(c, router)

	router.Handle("/metrics", mymetrics.Handler()).Methods("GET")

	err = startWebServerBlocking(c, logger, cfg.HTTP, router)
	if err != nil {
		log.Fatalf("Error running webserver on port %s: %s", cfg.HTTP.Port, err)
	}
}

func startWebServerBlocking(c context.Context, logger mylog.Logger, cfg myconfig.HTTPConfig, router *mux.Router) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Log(c, "", mylog.SeverityInfo, "Starting webserver on port %s (try http://localhost:%s/pricing)", cfg.Port, cfg.Port)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-c.Done():
	}

	logger.Log(context.Background(), "", mylog.SeverityInfo, "Shutting down webserver")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
