package main

import (
	stdlog "log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/username/pibconectar/src/charts"
	"github.com/username/pibconectar/src/config"
	"github.com/username/pibconectar/src/handlers"
	"github.com/username/pibconectar/src/logger"
	"github.com/username/pibconectar/src/processors"
	"github.com/username/pibconectar/src/services"
	"github.com/username/pibconectar/src/utils"
)

// newRouter wires the HTTP surface around an already assembled handler.
func newRouter(cfg *config.AppConfig, pibHandler *handlers.PIBHandler) http.Handler {
	limiter := handlers.NewClientRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	r := chi.NewRouter()

	// RemoteAddr is the rate-limit key, so forwarding headers are not trusted.
	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(handlers.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(limiter.Middleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.SendJSON(w, map[string]string{"message": "PIB Conectar backend is running"})
	})
	r.Get("/table", pibHandler.HandleGetPIBTable)

	r.Route("/api", func(r chi.Router) {
		r.Get("/pib", pibHandler.HandleGetPIBData)
		r.Get("/pib/chart", pibHandler.HandleGetPIBChart)
		r.Get("/pib/gdp", pibHandler.HandleGetGDPInUSD)
		r.Get("/pib/gdp-per-capita", pibHandler.HandleGetGDPPerCapitaInUSD)
		r.Get("/exchange-rates", pibHandler.HandleGetExchangeRates)
	})

	return r
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel, config.Cfg.LogFormat)

	logger.L.Info("PIB Conectar backend starting...")

	charts.Register()

	httpClient := services.NewHTTPClient(config.Cfg.HTTPClientTimeout)
	gdpService := services.NewGDPService(httpClient, config.Cfg.IBGEAPIURL)
	rateService := services.NewExchangeRateService(httpClient, config.Cfg.IPEADataAPIURL)

	conversionProcessor := processors.NewConversionProcessor(gdpService, rateService)
	pibProcessor := processors.NewPIBProcessor(conversionProcessor)

	pibHandler := handlers.NewPIBHandler(pibProcessor, conversionProcessor, rateService)

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:    serverAddr,
		Handler: newRouter(config.Cfg, pibHandler),
		// The upstream fetches must complete before the response is written.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: config.Cfg.HTTPClientTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
