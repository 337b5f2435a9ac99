package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"ulascansenturk/cloudcast-service/internal/providers"
	"ulascansenturk/cloudcast-service/internal/service"
)

type ForecastHandler struct {
	forecastService service.ForecastService
	locations       []Location
	timeout         time.Duration
}

func NewForecastHandler(forecastService service.ForecastService, timeout time.Duration) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
		locations:       DefaultLocations(),
		timeout:         timeout,
	}
}

func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	coordinate, err := parseCoordinate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondWithForecast(w, r, coordinate, "")
}

func (h *ForecastHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, LocationsResponse{Locations: h.locations})
}

func (h *ForecastHandler) GetLocationForecast(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 || index >= len(h.locations) {
		respondWithError(w, http.StatusNotFound, "location not found")
		return
	}

	location := h.locations[index]
	h.respondWithForecast(w, r, location.Coordinate(), location.Name)
}

func (h *ForecastHandler) respondWithForecast(w http.ResponseWriter, r *http.Request, coordinate providers.Coordinate, name string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	response, err := h.forecastService.GetForecast(ctx, coordinate)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			log.Ctx(r.Context()).Error().Err(err).Stringer("coordinate", coordinate).Msg("failed to get forecast")
		}
		respondWithError(w, status, "failed to get forecast: "+err.Error())
		return
	}

	body := newForecastResponse(coordinate, response.Forecast)
	body.Location = name
	respondWithJSON(w, http.StatusOK, body)
}
