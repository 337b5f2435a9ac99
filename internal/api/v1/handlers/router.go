package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers every route on the root router. mux only reports 405
// for method mismatches on the router the route lives on.
func NewRouter(forecastHandler *ForecastHandler, queryHandler *QueryHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware, LoggingMiddleware)

	router.HandleFunc("/health", health).Methods(http.MethodGet)

	router.HandleFunc("/v1/forecast", forecastHandler.GetForecast).Methods(http.MethodGet)
	router.HandleFunc("/v1/locations", forecastHandler.ListLocations).Methods(http.MethodGet)
	router.HandleFunc("/v1/locations/{index:[0-9]+}/forecast", forecastHandler.GetLocationForecast).Methods(http.MethodGet)
	router.HandleFunc("/v1/queries/recent", queryHandler.GetRecentQuery).Methods(http.MethodGet)

	// mux skips middlewares when no route matches
	router.NotFoundHandler = withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	}))
	router.MethodNotAllowedHandler = withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	}))

	return router
}

func withMiddleware(handler http.Handler) http.Handler {
	return RequestIDMiddleware(LoggingMiddleware(handler))
}

func health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
