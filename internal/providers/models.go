package providers

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"ulascansenturk/cloudcast-service/internal/weathercode"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate checks -90 <= latitude <= 90 and -180 <= longitude <= 180.
func (c Coordinate) Validate() error {
	if !inRange(c.Latitude, -90, 90) {
		return &InvalidInputError{Field: "latitude", Value: c.Latitude}
	}
	if !inRange(c.Longitude, -180, 180) {
		return &InvalidInputError{Field: "longitude", Value: c.Longitude}
	}
	return nil
}

// Key identifies the coordinate in queues and logs.
func (c Coordinate) Key() string {
	return formatDegrees(c.Latitude) + "," + formatDegrees(c.Longitude)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%s, %s)", formatDegrees(c.Latitude), formatDegrees(c.Longitude))
}

func inRange(v, lo, hi float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= lo && v <= hi
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CurrentWeatherForecast is built only from a fully validated response.
// Temperature is in °F, WindSpeed in mph, WindDirection in degrees.
type CurrentWeatherForecast struct {
	Temperature   float64              `json:"temperature"`
	WindSpeed     float64              `json:"wind_speed"`
	WindDirection float64              `json:"wind_direction"`
	WeatherCode   weathercode.Category `json:"weather_code"`
	ObservedAt    time.Time            `json:"observed_at"`
}

type ForecastResult struct {
	Coordinate Coordinate
	Forecast   CurrentWeatherForecast
	Err        error
}

// fields of open-meteo's current_weather object, set only once decoded
type currentWeatherPayload struct {
	Temperature   *float64
	WindSpeed     *float64
	WindDirection *float64
	WeatherCode   *int
}
