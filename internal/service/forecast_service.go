package service

import (
	"context"
	"errors"

	"ulascansenturk/cloudcast-service/internal/providers"
)

var ErrRequestDropped = errors.New("forecast request dropped before completion")

type ForecastResponse struct {
	Coordinate   providers.Coordinate             `json:"coordinate"`
	Forecast     providers.CurrentWeatherForecast `json:"forecast"`
	RequestCount int                              `json:"request_count"`
	Err          error                            `json:"-"`
}

type ForecastService interface {
	GetForecast(ctx context.Context, coordinate providers.Coordinate) (ForecastResponse, error)
}

type forecastService struct {
	aggregator ForecastRequestAggregator
}

func NewForecastService(aggregator ForecastRequestAggregator) ForecastService {
	return &forecastService{
		aggregator: aggregator,
	}
}

func (s *forecastService) GetForecast(ctx context.Context, coordinate providers.Coordinate) (ForecastResponse, error) {
	if err := coordinate.Validate(); err != nil {
		return ForecastResponse{}, err
	}

	responseChan, err := s.aggregator.AddRequest(ctx, coordinate)
	if err != nil {
		return ForecastResponse{}, err
	}

	select {
	case response, ok := <-responseChan:
		if !ok {
			return ForecastResponse{}, ErrRequestDropped
		}
		if response.Err != nil {
			return response, response.Err
		}
		return response, nil
	case <-ctx.Done():
		return ForecastResponse{}, ctx.Err()
	}
}
