package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/cloudcast-service/internal/weathercode"
)

const (
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	maxResponseBytes = 1 << 20
)

// HTTPDoer is the transport used by the forecast client. *http.Client
// satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherCodeResolver interface {
	Resolve(code int) weathercode.Category
}

type ForecastProvider interface {
	GetCurrentForecast(ctx context.Context, coordinate Coordinate) (CurrentWeatherForecast, error)
}

type ForecastClient interface {
	ForecastProvider
	Fetch(ctx context.Context, coordinate Coordinate) <-chan ForecastResult
}

type Option func(*forecastClient)

func WithHTTPClient(client HTTPDoer) Option {
	return func(c *forecastClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout replaces the transport with an *http.Client bounded by timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *forecastClient) {
		c.client = &http.Client{Timeout: timeout}
	}
}

func WithCatalog(catalog WeatherCodeResolver) Option {
	return func(c *forecastClient) {
		if catalog != nil {
			c.catalog = catalog
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *forecastClient) {
		if now != nil {
			c.now = now
		}
	}
}

type forecastClient struct {
	baseURL *url.URL
	client  HTTPDoer
	catalog WeatherCodeResolver
	now     func() time.Time
}

// NewForecastClient returns an open-meteo client. An empty baseURL selects
// DefaultBaseURL. Without options the client uses an *http.Client with no
// timeout and the default WMO catalog.
func NewForecastClient(baseURL string, opts ...Option) (ForecastClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid forecast API base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid forecast API base url: %q is not absolute", baseURL)
	}

	c := &forecastClient{
		baseURL: u,
		client:  &http.Client{},
		catalog: weathercode.Default(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *forecastClient) GetCurrentForecast(ctx context.Context, coordinate Coordinate) (CurrentWeatherForecast, error) {
	if err := coordinate.Validate(); err != nil {
		return CurrentWeatherForecast{}, err
	}

	requestURL := c.requestURL(coordinate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return CurrentWeatherForecast{}, &NetworkError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("coordinate", coordinate.Key()).Str("host", c.baseURL.Host).Msg("requesting current weather")

	resp, err := c.client.Do(req)
	if err != nil {
		return CurrentWeatherForecast{}, &NetworkError{Err: err}
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return CurrentWeatherForecast{}, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	if resp.Body == nil {
		return CurrentWeatherForecast{}, &MalformedResponseError{Reason: "missing response body"}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return CurrentWeatherForecast{}, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if len(body) > maxResponseBytes {
		return CurrentWeatherForecast{}, &MalformedResponseError{Reason: "response body exceeds " + strconv.Itoa(maxResponseBytes) + " bytes"}
	}

	current, err := decodeCurrentWeather(body)
	if err != nil {
		return CurrentWeatherForecast{}, err
	}

	return CurrentWeatherForecast{
		Temperature:   *current.Temperature,
		WindSpeed:     *current.WindSpeed,
		WindDirection: *current.WindDirection,
		WeatherCode:   c.catalog.Resolve(*current.WeatherCode),
		ObservedAt:    c.now().UTC(),
	}, nil
}

func (c *forecastClient) Fetch(ctx context.Context, coordinate Coordinate) <-chan ForecastResult {
	return Fetch(ctx, c, coordinate)
}

func (c *forecastClient) requestURL(coordinate Coordinate) string {
	u := *c.baseURL

	q := u.Query()
	q.Set("latitude", formatDegrees(coordinate.Latitude))
	q.Set("longitude", formatDegrees(coordinate.Longitude))
	q.Set("current_weather", "true")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("windspeed_unit", "mph")
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	return u.String()
}

// decodeCurrentWeather rejects the whole payload if any required field is
// missing, null or of the wrong type. Keys must match exactly, so fields are
// looked up in raw maps before being decoded one by one.
func decodeCurrentWeather(body []byte) (*currentWeatherPayload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &MalformedResponseError{Reason: "empty response body"}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &MalformedResponseError{Reason: "unexpected type for response", Err: err}
		}
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}

	rawCurrent, ok := top["current_weather"]
	if !ok || isJSONNull(rawCurrent) {
		return nil, &MalformedResponseError{Reason: "missing current_weather object"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawCurrent, &fields); err != nil {
		return nil, &MalformedResponseError{Reason: "unexpected type for current_weather", Err: err}
	}

	current := &currentWeatherPayload{}
	var err error
	if current.Temperature, err = decodeField[float64](fields, "temperature"); err != nil {
		return nil, err
	}
	if current.WindSpeed, err = decodeField[float64](fields, "windspeed"); err != nil {
		return nil, err
	}
	if current.WindDirection, err = decodeField[float64](fields, "winddirection"); err != nil {
		return nil, err
	}
	if current.WeatherCode, err = decodeField[int](fields, "weathercode"); err != nil {
		return nil, err
	}

	if *current.WindSpeed < 0 {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("negative windspeed %v", *current.WindSpeed)}
	}
	if *current.WindDirection < 0 || *current.WindDirection > 360 {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("winddirection %v outside 0-360", *current.WindDirection)}
	}

	return current, nil
}

func decodeField[T any](fields map[string]json.RawMessage, name string) (*T, error) {
	raw, ok := fields[name]
	if !ok || isJSONNull(raw) {
		return nil, missingField(name)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, &MalformedResponseError{Reason: "unexpected type for current_weather." + name, Err: err}
	}

	return &value, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func missingField(name string) error {
	return &MalformedResponseError{Reason: "missing field current_weather." + name}
}

// Fetch runs provider on its own goroutine. The returned channel receives
// exactly one result and is then closed. If ctx is done by the time the result
// is ready, the result is dropped and the channel is closed empty.
func Fetch(ctx context.Context, provider ForecastProvider, coordinate Coordinate) <-chan ForecastResult {
	resultChan := make(chan ForecastResult, 1)

	go func() {
		defer close(resultChan)

		forecast, err := provider.GetCurrentForecast(ctx, coordinate)
		if ctx.Err() != nil {
			return
		}

		resultChan <- ForecastResult{
			Coordinate: coordinate,
			Forecast:   forecast,
			Err:        err,
		}
	}()

	return resultChan
}
