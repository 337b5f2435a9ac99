package providers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"
)

var ErrRateLimited = errors.New("rate limit wait canceled")

// RateLimitedForecastProvider throttles calls to the upstream forecast API.
type RateLimitedForecastProvider struct {
	provider ForecastProvider
	limiter  *rate.Limiter
}

// NewRateLimitedForecastProvider allows rps requests per second with the given
// burst. rps may be fractional.
func NewRateLimitedForecastProvider(provider ForecastProvider, rps float64, burst int) *RateLimitedForecastProvider {
	if burst < 1 {
		burst = 1
	}

	return &RateLimitedForecastProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedForecastProvider) GetCurrentForecast(ctx context.Context, coordinate Coordinate) (CurrentWeatherForecast, error) {
	// invalid input must fail before it can consume a token
	if err := coordinate.Validate(); err != nil {
		return CurrentWeatherForecast{}, err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return CurrentWeatherForecast{}, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	return r.provider.GetCurrentForecast(ctx, coordinate)
}

func (r *RateLimitedForecastProvider) Fetch(ctx context.Context, coordinate Coordinate) <-chan ForecastResult {
	return Fetch(ctx, r, coordinate)
}

var _ ForecastClient = (*RateLimitedForecastProvider)(nil)
