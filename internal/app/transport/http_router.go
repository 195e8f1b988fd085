package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/config"
	"github.com/ijalalfrz/flight-movement-importer/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-movement-importer/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
// limiter may be nil, which disables import rate limiting.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.RateLimiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/flights", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		importRouter := router.With()
		if limiter != nil && cfg.Import.RateLimit > 0 {
			importRouter = router.With(httptransport.RateLimit(limiter, "import", cfg.Import.RateLimit))
		}

		importRouter.Post("/import", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.Import,
			httptransport.DecodeImportRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/export", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.Export,
			httptransport.DecodeExportRequest,
			httptransport.FileResponse,
		))

		router.Get("/{kind}", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.ListRecords,
			httptransport.DecodeListRecordsRequest,
			httptransport.ResponseWithBody,
		))
	})

	return router
}
