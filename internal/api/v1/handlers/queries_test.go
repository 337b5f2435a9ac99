package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"ulascansenturk/cloudcast-service/internal/api/v1/handlers"
	"ulascansenturk/cloudcast-service/internal/db/forecastquery"
	"ulascansenturk/cloudcast-service/internal/mocks"
)

type QueryHandlerTestSuite struct {
	suite.Suite
	mockRepo *mocks.MockRepository
	router   *mux.Router
}

func (s *QueryHandlerTestSuite) SetupTest() {
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.router = handlers.NewRouter(
		handlers.NewForecastHandler(mocks.NewMockForecastService(s.T()), time.Second),
		handlers.NewQueryHandler(s.mockRepo),
	)
}

func (s *QueryHandlerTestSuite) serve(target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func (s *QueryHandlerTestSuite) TestGetRecentQuerySuccess() {
	query := &forecastquery.ForecastQuery{
		ID:           7,
		FetchID:      "b6f1c7a0-4f0e-4c3c-9a57-1b2f4c0d9e11",
		Latitude:     sanJose.Latitude,
		Longitude:    sanJose.Longitude,
		Temperature:  68.5,
		WeatherCode:  2,
		Description:  "Partly cloudy",
		RequestCount: 3,
		ObservedAt:   observedAt,
		CreatedAt:    observedAt,
	}
	s.mockRepo.On("GetRecentForecastQuery", sanJose).Return(query, nil)

	recorder := s.serve("/v1/queries/recent?latitude=37.335480&longitude=-121.893028")

	s.Equal(http.StatusOK, recorder.Code)

	var response forecastquery.ForecastQuery
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal(query.FetchID, response.FetchID)
	s.Equal(3, response.RequestCount)
	s.Equal("Partly cloudy", response.Description)
}

func (s *QueryHandlerTestSuite) TestGetRecentQueryNotFound() {
	s.mockRepo.On("GetRecentForecastQuery", manila).Return(nil, gorm.ErrRecordNotFound)

	recorder := s.serve("/v1/queries/recent?latitude=12.8797&longitude=121.7740")

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *QueryHandlerTestSuite) TestGetRecentQueryRepositoryError() {
	s.mockRepo.On("GetRecentForecastQuery", manila).Return(nil, errors.New("connection reset"))

	recorder := s.serve("/v1/queries/recent?latitude=12.8797&longitude=121.7740")

	s.Equal(http.StatusInternalServerError, recorder.Code)
}

func (s *QueryHandlerTestSuite) TestGetRecentQueryInvalidCoordinate() {
	for _, target := range []string{
		"/v1/queries/recent?latitude=91&longitude=0",
		"/v1/queries/recent?latitude=0&longitude=-180.5",
		"/v1/queries/recent?longitude=0",
	} {
		recorder := s.serve(target)
		s.Equal(http.StatusBadRequest, recorder.Code, target)
	}

	s.mockRepo.AssertNotCalled(s.T(), "GetRecentForecastQuery", mock.Anything)
}

func (s *QueryHandlerTestSuite) TestGetRecentQueryDisabled() {
	router := handlers.NewRouter(
		handlers.NewForecastHandler(mocks.NewMockForecastService(s.T()), time.Second),
		handlers.NewQueryHandler(nil),
	)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/queries/recent?latitude=1&longitude=1", nil))

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
}

func TestQueryHandlerSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlerTestSuite))
}
