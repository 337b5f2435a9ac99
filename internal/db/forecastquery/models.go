package forecastquery

import (
	"time"
)

// ForecastQuery records one upstream fetch and how many callers shared it.
type ForecastQuery struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FetchID       string    `json:"fetch_id" gorm:"type:uuid;index:idx_fetch_id"`
	Latitude      float64   `json:"latitude" gorm:"index:idx_coordinate;index:idx_coordinate_created_at"`
	Longitude     float64   `json:"longitude" gorm:"index:idx_coordinate;index:idx_coordinate_created_at"`
	Temperature   float64   `json:"temperature"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection float64   `json:"wind_direction"`
	WeatherCode   int       `json:"weather_code"`
	Description   string    `json:"description"`
	RequestCount  int       `json:"request_count" gorm:"column:request_count"`
	ObservedAt    time.Time `json:"observed_at"`
	CreatedAt     time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_coordinate_created_at"`
}

func (ForecastQuery) TableName() string {
	return "forecast_queries"
}
