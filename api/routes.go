package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/tally-server/internal/handlers/v1/invoice"
	"github.com/carson-networks/tally-server/internal/handlers/v1/ledger"
	"github.com/carson-networks/tally-server/internal/handlers/v1/status"
	"github.com/carson-networks/tally-server/internal/logging"
	"github.com/carson-networks/tally-server/internal/service"
	"github.com/carson-networks/tally-server/internal/view"
)

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Service        *service.Service
	AllowedOrigins []string
}

// Handler builds the router: the HTML page and status check at the root, the JSON API under /v1.
func (r *Rest) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	statusHandler := status.NewHandler()
	viewHandler := view.NewHandler(r.Service.Ledger, r.Service.Invoices)

	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	router.Get("/", logging.LoggingWrapper("View.Index", r.Logger, viewHandler.Index))
	router.Post("/ledger", logging.LoggingWrapper("View.AddEntry", r.Logger, viewHandler.AddEntry))
	router.Post("/invoices", logging.LoggingWrapper("View.AddInvoice", r.Logger, viewHandler.AddInvoice))

	router.Group(func(apiRouter chi.Router) {
		apiRouter.Use(logging.Middleware("API", r.Logger))

		api := humachi.New(apiRouter, huma.DefaultConfig("Tally Server", "1.0.0"))
		ledger.NewCreateLedgerEntryHandler(r.Service.Ledger).Register(api)
		ledger.NewListLedgerEntriesHandler(r.Service.Ledger).Register(api)
		invoice.NewCreateInvoiceHandler(r.Service.Invoices).Register(api)
		invoice.NewListInvoicesHandler(r.Service.Invoices).Register(api)
	})

	return router
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
