package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"ulascansenturk/cloudcast-service/internal/providers"
	"ulascansenturk/cloudcast-service/internal/service"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusBadGateway:
		errorCode = "BAD_GATEWAY"
		title = "Bad Gateway"
	case http.StatusServiceUnavailable:
		errorCode = "SERVICE_UNAVAILABLE"
		title = "Service Unavailable"
	case http.StatusGatewayTimeout:
		errorCode = "GATEWAY_TIMEOUT"
		title = "Gateway Timeout"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// statusForError maps forecast failures onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, providers.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, providers.ErrHTTPStatus), errors.Is(err, providers.ErrMalformedResponse):
		return http.StatusBadGateway
	case errors.Is(err, providers.ErrNetwork),
		errors.Is(err, providers.ErrRateLimited),
		errors.Is(err, service.ErrRequestDropped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func parseCoordinate(r *http.Request) (providers.Coordinate, error) {
	latitude, err := parseFloatParam(r, "latitude")
	if err != nil {
		return providers.Coordinate{}, err
	}

	longitude, err := parseFloatParam(r, "longitude")
	if err != nil {
		return providers.Coordinate{}, err
	}

	return providers.Coordinate{Latitude: latitude, Longitude: longitude}, nil
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("query parameter '%s' is required", name)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter '%s' must be a number", name)
	}

	return value, nil
}
