package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/bdi/internal/api/handlers"
	mw "github.com/Harshitk-cp/bdi/internal/api/middleware"
	"github.com/Harshitk-cp/bdi/internal/buildconfig"
	"github.com/Harshitk-cp/bdi/internal/config"
	"github.com/Harshitk-cp/bdi/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the router and the hosted agents for lifecycle management.
type App struct {
	Router    *chi.Mux
	Agents    *service.AgentService
	metrics   *mw.MetricsCollector
	startTime time.Time
}

func NewApp(agents *service.AgentService, logger *zap.Logger) *App {
	agentHandler := handlers.NewAgentHandler(agents)
	stateHandler := handlers.NewStateHandler(agents)
	cycleHandler := handlers.NewCycleHandler(agents, logger)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Agents:    agents,
		metrics:   mw.NewMetricsCollector(),
		startTime: time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)           // Generate/extract request ID first
	r.Use(middleware.RealIP)      // Extract real IP
	r.Use(app.metrics.Middleware) // Collect metrics
	r.Use(mw.Logging(logger))     // Log all requests
	r.Use(middleware.Recoverer)   // Recover from panics

	// Health and metrics (no auth)
	r.Get("/health", app.healthHandler())
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(config.APIKey()))

		r.Route("/agents", func(r chi.Router) {
			r.Post("/", agentHandler.Create)
			r.Get("/", agentHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", agentHandler.GetByID)
				r.Get("/context", agentHandler.Context)
				r.Post("/beliefs", stateHandler.AddBelief)
				r.Post("/desires", stateHandler.AddDesire)
				r.Post("/reason", cycleHandler.Reason)
				r.Post("/execute", cycleHandler.Execute)
				r.Post("/cycle", cycleHandler.Cycle)
			})
		})
	})

	return app
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status": "ok",
			"agents": len(app.Agents.List(r.Context())),
		}
		for k, v := range buildconfig.VersionInfo() {
			response[k] = v
		}
		writeJSON(w, http.StatusOK, response)
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)
		counters := app.metrics.Snapshot()

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  counters.RequestCount,
			"error_count":    counters.ErrorCount,
			"in_flight":      counters.InFlight,
			"agents":         len(app.Agents.List(r.Context())),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		writeJSON(w, http.StatusOK, response)
	}
}
