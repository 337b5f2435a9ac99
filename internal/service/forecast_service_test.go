package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/cloudcast-service/internal/mocks"
	"ulascansenturk/cloudcast-service/internal/providers"
	"ulascansenturk/cloudcast-service/internal/service"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	mockAggregator *mocks.MockForecastRequestAggregator
	service        service.ForecastService
	ctx            context.Context
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.mockAggregator = mocks.NewMockForecastRequestAggregator(s.T())
	s.service = service.NewForecastService(s.mockAggregator)
	s.ctx = context.Background()
}

func convertToReceiveOnlyChannel(ch chan service.ForecastResponse) <-chan service.ForecastResponse {
	return ch
}

func (s *ForecastServiceTestSuite) TestGetForecastWithValidCoordinate() {
	expectedResponse := service.ForecastResponse{
		Coordinate:   sanJose,
		Forecast:     forecastFor(68.5, 0),
		RequestCount: 1,
	}

	responseChan := make(chan service.ForecastResponse, 1)
	responseChan <- expectedResponse
	close(responseChan)

	s.mockAggregator.On("AddRequest", mock.Anything, sanJose).
		Return(convertToReceiveOnlyChannel(responseChan), nil)

	result, err := s.service.GetForecast(s.ctx, sanJose)

	s.NoError(err)
	s.Equal(expectedResponse, result)
	s.Equal("Clear sky", result.Forecast.WeatherCode.Description)
	s.mockAggregator.AssertExpectations(s.T())
}

func (s *ForecastServiceTestSuite) TestGetForecastWithInvalidCoordinate() {
	for _, coordinate := range []providers.Coordinate{
		{Latitude: 95.0, Longitude: 0},
		{Latitude: -90.5, Longitude: 0},
		{Latitude: 0, Longitude: 180.01},
		{Latitude: 0, Longitude: -181},
	} {
		result, err := s.service.GetForecast(s.ctx, coordinate)

		s.Error(err)
		s.Equal(service.ForecastResponse{}, result)

		var inputErr *providers.InvalidInputError
		s.True(errors.As(err, &inputErr))
	}

	s.mockAggregator.AssertNotCalled(s.T(), "AddRequest", mock.Anything, mock.Anything)
}

func (s *ForecastServiceTestSuite) TestGetForecastWithAggregatorError() {
	expectedError := errors.New("aggregator error")

	s.mockAggregator.On("AddRequest", mock.Anything, manila).
		Return((<-chan service.ForecastResponse)(nil), expectedError)

	result, err := s.service.GetForecast(s.ctx, manila)

	s.Error(err)
	s.Equal(service.ForecastResponse{}, result)
	s.Equal(expectedError, err)
	s.mockAggregator.AssertExpectations(s.T())
}

func (s *ForecastServiceTestSuite) TestGetForecastWithErrorResponse() {
	upstreamErr := &providers.MalformedResponseError{Reason: "missing field current_weather.windspeed"}

	errorResponse := service.ForecastResponse{
		Coordinate:   italy,
		RequestCount: 1,
		Err:          upstreamErr,
	}

	responseChan := make(chan service.ForecastResponse, 1)
	responseChan <- errorResponse
	close(responseChan)

	s.mockAggregator.On("AddRequest", mock.Anything, italy).
		Return(convertToReceiveOnlyChannel(responseChan), nil)

	result, err := s.service.GetForecast(s.ctx, italy)

	s.Error(err)
	s.Equal(errorResponse, result)
	s.ErrorIs(err, providers.ErrMalformedResponse)
	s.Contains(err.Error(), "windspeed")
	s.mockAggregator.AssertExpectations(s.T())
}

func (s *ForecastServiceTestSuite) TestGetForecastWithContextTimeout() {
	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()

	responseChan := make(chan service.ForecastResponse)

	s.mockAggregator.On("AddRequest", mock.Anything, sanJose).
		Return(convertToReceiveOnlyChannel(responseChan), nil)

	result, err := s.service.GetForecast(ctx, sanJose)

	s.Error(err)
	s.Equal(service.ForecastResponse{}, result)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.mockAggregator.AssertExpectations(s.T())
}

func (s *ForecastServiceTestSuite) TestGetForecastWithDroppedRequest() {
	responseChan := make(chan service.ForecastResponse)
	close(responseChan)

	s.mockAggregator.On("AddRequest", mock.Anything, manila).
		Return(convertToReceiveOnlyChannel(responseChan), nil)

	result, err := s.service.GetForecast(s.ctx, manila)

	s.ErrorIs(err, service.ErrRequestDropped)
	s.Equal(service.ForecastResponse{}, result)
}

func (s *ForecastServiceTestSuite) TestGetForecastWithSharedFetch() {
	sharedResponse := service.ForecastResponse{
		Coordinate:   sanJose,
		Forecast:     forecastFor(66.0, 3),
		RequestCount: 4,
	}

	responseChan := make(chan service.ForecastResponse, 1)
	responseChan <- sharedResponse
	close(responseChan)

	s.mockAggregator.On("AddRequest", mock.Anything, sanJose).
		Return(convertToReceiveOnlyChannel(responseChan), nil)

	result, err := s.service.GetForecast(s.ctx, sanJose)

	s.NoError(err)
	s.Equal(4, result.RequestCount)
	s.Equal("Overcast", result.Forecast.WeatherCode.Description)
}

func TestForecastServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
