package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/cloudcast-service/internal/db/forecastquery"
	"ulascansenturk/cloudcast-service/internal/providers"
)

// ForecastRequestAggregator keeps at most one upstream fetch in flight per
// coordinate. Callers asking for the same coordinate share its result.
type ForecastRequestAggregator interface {
	AddRequest(ctx context.Context, coordinate providers.Coordinate) (<-chan ForecastResponse, error)
	ProcessQueueForTesting(coordinate providers.Coordinate)
	Shutdown()
}

type coordinateQueue struct {
	channels   []chan ForecastResponse
	timer      *time.Timer
	dispatched bool
	done       bool
	mu         sync.Mutex
}

type forecastAggregator struct {
	forecastAPI       providers.ForecastProvider
	forecastQueryRepo forecastquery.Repository
	queues            map[string]*coordinateQueue
	queueMutex        sync.RWMutex
	maxQueueSize      int
	maxWaitTime       time.Duration
}

// NewForecastRequestAggregator waits up to maxWaitTime for callers to gather
// before dispatching, or dispatches at once when maxQueueSize callers are
// waiting. forecastQueryRepo may be nil.
func NewForecastRequestAggregator(
	forecastAPI providers.ForecastProvider,
	forecastQueryRepo forecastquery.Repository,
	maxQueueSize int,
	maxWaitTime time.Duration,
) ForecastRequestAggregator {
	if maxQueueSize < 1 {
		maxQueueSize = 1
	}

	return &forecastAggregator{
		forecastAPI:       forecastAPI,
		forecastQueryRepo: forecastQueryRepo,
		queues:            make(map[string]*coordinateQueue),
		maxQueueSize:      maxQueueSize,
		maxWaitTime:       maxWaitTime,
	}
}

func (w *forecastAggregator) AddRequest(ctx context.Context, coordinate providers.Coordinate) (<-chan ForecastResponse, error) {
	if err := coordinate.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// buffered so delivery never blocks on a caller that went away
	responseChan := make(chan ForecastResponse, 1)

	for {
		queue := w.queueFor(coordinate.Key())

		queue.mu.Lock()
		if queue.done {
			// finished between lookup and lock, a fresh queue is in the map now
			queue.mu.Unlock()
			continue
		}

		queue.channels = append(queue.channels, responseChan)

		// joiners of an in-flight fetch just wait for its result
		if !queue.dispatched {
			if len(queue.channels) == 1 {
				queue.timer = time.AfterFunc(w.maxWaitTime, func() {
					w.processQueue(coordinate)
				})
			}

			if len(queue.channels) >= w.maxQueueSize {
				if queue.timer != nil {
					queue.timer.Stop()
					queue.timer = nil
				}
				go w.processQueue(coordinate)
			}
		}

		queue.mu.Unlock()

		return responseChan, nil
	}
}

func (w *forecastAggregator) queueFor(key string) *coordinateQueue {
	w.queueMutex.RLock()
	queue, exists := w.queues[key]
	w.queueMutex.RUnlock()

	if exists {
		return queue
	}

	w.queueMutex.Lock()
	defer w.queueMutex.Unlock()

	queue, exists = w.queues[key]
	if !exists {
		queue = &coordinateQueue{}
		w.queues[key] = queue
	}

	return queue
}

func (w *forecastAggregator) processQueue(coordinate providers.Coordinate) {
	key := coordinate.Key()

	w.queueMutex.RLock()
	queue, exists := w.queues[key]
	w.queueMutex.RUnlock()

	if !exists {
		return
	}

	queue.mu.Lock()
	if queue.dispatched || queue.done || len(queue.channels) == 0 {
		queue.mu.Unlock()
		return
	}

	queue.dispatched = true
	if queue.timer != nil {
		queue.timer.Stop()
		queue.timer = nil
	}
	queue.mu.Unlock()

	fetchID := uuid.NewString()
	logger := log.With().Str("fetch_id", fetchID).Str("coordinate", key).Logger()

	// the fetch is shared, so no single caller's context may cancel it
	forecast, fetchErr := w.forecastAPI.GetCurrentForecast(context.Background(), coordinate)

	w.queueMutex.Lock()
	if w.queues[key] == queue {
		delete(w.queues, key)
	}
	queue.mu.Lock()
	queue.done = true
	channels := queue.channels
	queue.channels = nil
	queue.mu.Unlock()
	w.queueMutex.Unlock()

	if fetchErr != nil {
		logger.Warn().Err(fetchErr).Int("request_count", len(channels)).Msg("forecast fetch failed")

		for _, ch := range channels {
			ch <- ForecastResponse{
				Coordinate:   coordinate,
				RequestCount: len(channels),
				Err:          fetchErr,
			}
			close(ch)
		}

		return
	}

	logger.Debug().Int("request_count", len(channels)).Msg("forecast fetched")

	go func() {
		if w.forecastQueryRepo != nil {
			if err := w.forecastQueryRepo.LogForecastQuery(fetchID, coordinate, forecast, len(channels)); err != nil {
				logger.Error().Err(err).Msg("Failed to log forecast query")
			}
		}
	}()

	for _, ch := range channels {
		ch <- ForecastResponse{
			Coordinate:   coordinate,
			Forecast:     forecast,
			RequestCount: len(channels),
		}
		close(ch)
	}
}

// Shutdown drops queues that have not been dispatched yet and closes their
// channels. Fetches already in flight still deliver.
func (w *forecastAggregator) Shutdown() {
	w.queueMutex.Lock()
	defer w.queueMutex.Unlock()

	for _, queue := range w.queues {
		queue.mu.Lock()

		if queue.timer != nil {
			queue.timer.Stop()
			queue.timer = nil
		}

		if !queue.dispatched {
			for _, ch := range queue.channels {
				close(ch)
			}
			queue.channels = nil
			queue.done = true
		}

		queue.mu.Unlock()
	}

	w.queues = make(map[string]*coordinateQueue)
}

func (w *forecastAggregator) ProcessQueueForTesting(coordinate providers.Coordinate) {
	w.processQueue(coordinate)
}
