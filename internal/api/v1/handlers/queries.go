package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"ulascansenturk/cloudcast-service/internal/db/forecastquery"
)

type QueryHandler struct {
	forecastQueryRepo forecastquery.Repository
}

// NewQueryHandler accepts a nil repository when the audit log is disabled.
func NewQueryHandler(forecastQueryRepo forecastquery.Repository) *QueryHandler {
	return &QueryHandler{forecastQueryRepo: forecastQueryRepo}
}

func (h *QueryHandler) GetRecentQuery(w http.ResponseWriter, r *http.Request) {
	if h.forecastQueryRepo == nil {
		respondWithError(w, http.StatusServiceUnavailable, "forecast query log is disabled")
		return
	}

	coordinate, err := parseCoordinate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := coordinate.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	query, err := h.forecastQueryRepo.GetRecentForecastQuery(coordinate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "no forecast query recorded for "+coordinate.String())
			return
		}
		log.Ctx(r.Context()).Error().Err(err).Stringer("coordinate", coordinate).Msg("failed to load forecast query")
		respondWithError(w, http.StatusInternalServerError, "failed to load forecast query")
		return
	}

	respondWithJSON(w, http.StatusOK, query)
}
