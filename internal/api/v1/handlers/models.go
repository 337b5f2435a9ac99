package handlers

import (
	"time"

	"ulascansenturk/cloudcast-service/internal/providers"
)

type ForecastResponse struct {
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Location        string    `json:"location,omitempty"`
	Temperature     float64   `json:"temperature"`
	TemperatureUnit string    `json:"temperature_unit"`
	WindSpeed       float64   `json:"wind_speed"`
	WindSpeedUnit   string    `json:"wind_speed_unit"`
	WindDirection   float64   `json:"wind_direction"`
	WeatherCode     int       `json:"weather_code"`
	Description     string    `json:"description"`
	Icon            string    `json:"icon"`
	ObservedAt      time.Time `json:"observed_at"`
}

func newForecastResponse(coordinate providers.Coordinate, forecast providers.CurrentWeatherForecast) ForecastResponse {
	return ForecastResponse{
		Latitude:        coordinate.Latitude,
		Longitude:       coordinate.Longitude,
		Temperature:     forecast.Temperature,
		TemperatureUnit: "fahrenheit",
		WindSpeed:       forecast.WindSpeed,
		WindSpeedUnit:   "mph",
		WindDirection:   forecast.WindDirection,
		WeatherCode:     forecast.WeatherCode.Code,
		Description:     forecast.WeatherCode.Description,
		Icon:            forecast.WeatherCode.IconID,
		ObservedAt:      forecast.ObservedAt,
	}
}

type Location struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l Location) Coordinate() providers.Coordinate {
	return providers.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

type LocationsResponse struct {
	Locations []Location `json:"locations"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
