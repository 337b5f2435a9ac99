package forecastquery

import (
	"time"

	"gorm.io/gorm"
	"ulascansenturk/cloudcast-service/internal/providers"
)

type Repository interface {
	LogForecastQuery(fetchID string, coordinate providers.Coordinate, forecast providers.CurrentWeatherForecast, requestCount int) error
	GetRecentForecastQuery(coordinate providers.Coordinate) (*ForecastQuery, error)
}

type ForecastSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ForecastSQLRepository{db: db}
}

func (r *ForecastSQLRepository) LogForecastQuery(fetchID string, coordinate providers.Coordinate, forecast providers.CurrentWeatherForecast, requestCount int) error {
	query := ForecastQuery{
		FetchID:       fetchID,
		Latitude:      coordinate.Latitude,
		Longitude:     coordinate.Longitude,
		Temperature:   forecast.Temperature,
		WindSpeed:     forecast.WindSpeed,
		WindDirection: forecast.WindDirection,
		WeatherCode:   forecast.WeatherCode.Code,
		Description:   forecast.WeatherCode.Description,
		RequestCount:  requestCount,
		ObservedAt:    forecast.ObservedAt,
		CreatedAt:     time.Now(),
	}

	return r.db.Create(&query).Error
}

func (r *ForecastSQLRepository) GetRecentForecastQuery(coordinate providers.Coordinate) (*ForecastQuery, error) {
	var query ForecastQuery
	err := r.db.
		Where("latitude = ? AND longitude = ?", coordinate.Latitude, coordinate.Longitude).
		Order("created_at DESC").
		First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}
