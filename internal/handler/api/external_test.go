//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/internal/handler/api"
	resdto "manuara-reservas/internal/handler/dto/response"
	"manuara-reservas/internal/handler/middleware"
	"manuara-reservas/internal/pkg/apikey"
	"manuara-reservas/internal/usecase/queries"
	"manuara-reservas/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type mockAvailabilityQueries struct {
	mock.Mock
}

func (m *mockAvailabilityQueries) CheckCabin(ctx context.Context, cabinID cabin.ID, stay reservation.StayRange) (*queries.CabinCheck, error) {
	args := m.Called(ctx, cabinID, stay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.CabinCheck), args.Error(1)
}

func (m *mockAvailabilityQueries) CheckAllCabins(ctx context.Context, stay reservation.StayRange) ([]reservation.CabinAvailability, error) {
	args := m.Called(ctx, stay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reservation.CabinAvailability), args.Error(1)
}

const testAPIKey = "partner-secret"

type ExternalHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockAvailability *mockAvailabilityQueries
}

func (s *ExternalHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ExternalHandlerTestSuite) SetupTest() {
	hash, err := apikey.Hash(testAPIKey)
	s.Require().NoError(err)

	s.mockAvailability = &mockAvailabilityQueries{}
	handler := api.NewExternalHandler(s.mockAvailability)
	keyMiddleware := middleware.NewAPIKeyMiddleware(apikey.NewVerifier(hash))

	s.router = gin.New()
	s.router.HandleMethodNotAllowed = true
	s.router.GET("/external/availability", keyMiddleware.RequireAPIKey(), handler.GetAvailability)
}

func TestExternalHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExternalHandlerTestSuite))
}

func (s *ExternalHandlerTestSuite) TestGetAvailability() {
	url := "/external/availability?cabinType=pequena&checkIn=2025-08-03&checkOut=2025-08-06"
	keyHeader := map[string]string{"X-Api-Key": testAPIKey}

	s.Run("success: 200 with available cabin", func() {
		s.mockAvailability.On("CheckCabin", mock.Anything, cabin.Small, mock.Anything).
			Return(&queries.CabinCheck{CabinID: cabin.Small, Available: true}, nil).Once()

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil, keyHeader)

		var body resdto.ExternalAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal("pequena", body.CabinType)
		s.Equal("2025-08-03", body.CheckIn)
		s.Nil(body.NextAvailableDate)
	})

	s.Run("success: 200 busy cabin suggests next date", func() {
		next, err := reservation.ParseDate("2025-08-07")
		s.Require().NoError(err)
		s.mockAvailability.On("CheckCabin", mock.Anything, cabin.Small, mock.Anything).
			Return(&queries.CabinCheck{CabinID: cabin.Small, Available: false, NextAvailableDate: &next}, nil).Once()

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil, keyHeader)

		var body resdto.ExternalAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		require.NotNil(s.T(), body.NextAvailableDate)
		s.Equal("2025-08-07", *body.NextAvailableDate)
	})

	s.Run("error: 401 without key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 with wrong key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil,
			map[string]string{"X-Api-Key": "stolen-guess"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on unknown cabinType", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet,
			"/external/availability?cabinType=suite&checkIn=2025-08-03&checkOut=2025-08-06", nil, keyHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cabinType")
	})

	s.Run("error: 400 on reversed dates", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet,
			"/external/availability?cabinType=pequena&checkIn=2025-08-06&checkOut=2025-08-03", nil, keyHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "checkIn")
	})

	s.Run("error: 405 on write attempt", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, keyHeader)
		s.Equal(http.StatusMethodNotAllowed, rec.Code)
	})
}
