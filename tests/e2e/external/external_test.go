//go:build e2e

package external_test

import (
	"net/http"
	"testing"
	"time"

	"manuara-reservas/internal/handler/dto/response"
	"manuara-reservas/tests/common/authtest"
	"manuara-reservas/tests/common/httptest"
	"manuara-reservas/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const externalAvailabilityURL = "/external/availability"

type ExternalSuite struct {
	e2e.SharedSuite
}

func TestExternalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExternalSuite))
}

func (s *ExternalSuite) keyHeader() map[string]string {
	return map[string]string{"X-Api-Key": e2e.ExternalAPIKey}
}

func (s *ExternalSuite) TestAvailability() {
	s.Run("free cabin type is reported available", func() {
		t := s.T()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet,
			externalAvailabilityURL+"?cabinType=pequena&checkIn=2025-09-01&checkOut=2025-09-04",
			nil, s.keyHeader())

		var body response.ExternalAvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.True(t, body.Available)
		require.Equal(t, "pequena", body.CabinType)
		require.Nil(t, body.NextAvailableDate)
	})

	s.Run("booked cabin type suggests the next free date", func() {
		t := s.T()

		// Book via the admin API, then observe through the partner lens.
		token := authtest.MintToken(t, s.Config.Auth.JWTSecret, uuid.New(), "admin", time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", map[string]any{
			"cabin_id":    "small",
			"check_in":    "2025-09-01",
			"check_out":   "2025-09-05",
			"guest_name":  "Ana Pakarati",
			"guest_count": 2,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet,
			externalAvailabilityURL+"?cabinType=pequena&checkIn=2025-09-02&checkOut=2025-09-04",
			nil, s.keyHeader())

		var body response.ExternalAvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.False(t, body.Available)
		require.NotNil(t, body.NextAvailableDate)
		require.Equal(t, "2025-09-05", *body.NextAvailableDate)
	})

	s.Run("missing or wrong key is rejected with one body", func() {
		t := s.T()

		url := externalAvailabilityURL + "?cabinType=pequena&checkIn=2025-09-01&checkOut=2025-09-04"

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, url, nil, nil)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, url, nil,
			map[string]string{"X-Api-Key": "guessed"})
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("admin token does not open the external gate", func() {
		t := s.T()

		token := authtest.MintToken(t, s.Config.Auth.JWTSecret, uuid.New(), "admin", time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			externalAvailabilityURL+"?cabinType=pequena&checkIn=2025-09-01&checkOut=2025-09-04", nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown cabin type is a 400", func() {
		t := s.T()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet,
			externalAvailabilityURL+"?cabinType=suite&checkIn=2025-09-01&checkOut=2025-09-04",
			nil, s.keyHeader())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "cabinType")
	})

	s.Run("write methods are not allowed", func() {
		t := s.T()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost,
			externalAvailabilityURL, nil, s.keyHeader())
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
