package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /health", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerStatRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /team-dashboard/{teamID}", handler.GetTeamDashboard)
}

func registerProjectionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/projections/{date}", handler.GetProjections)
	mux.HandleFunc("POST /v1/projections/matchup", handler.ProjectMatchup)
	mux.HandleFunc("GET /v1/performance/summary", handler.GetPerformanceSummary)
	mux.HandleFunc("GET /v1/recommendations", handler.GetRecommendation)
}
