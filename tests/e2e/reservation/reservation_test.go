//go:build e2e

package reservation_test

import (
	"net/http"
	"testing"
	"time"

	"manuara-reservas/internal/handler/dto/response"
	"manuara-reservas/tests/common/authtest"
	"manuara-reservas/tests/common/dbtest"
	"manuara-reservas/tests/common/httptest"
	"manuara-reservas/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/availability"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) adminToken() string {
	return authtest.MintToken(s.T(), s.Config.Auth.JWTSecret, uuid.New(), "admin", time.Hour)
}

func createBody(cabinID, checkIn, checkOut, guest string) map[string]any {
	return map[string]any{
		"cabin_id":    cabinID,
		"check_in":    checkIn,
		"check_out":   checkOut,
		"guest_name":  guest,
		"guest_count": 2,
	}
}

func (s *ReservationSuite) createReservation(token string, body map[string]any) response.ReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, "create failed: %s", w.Body.String())

	var created response.ReservationResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	return created
}

func (s *ReservationSuite) TestBookingFlow() {
	s.Run("overlapping booking is rejected and freed by cancellation", func() {
		t := s.T()
		token := s.adminToken()

		first := s.createReservation(token, createBody("small", "2025-09-01", "2025-09-05", "Ana Pakarati"))
		require.Equal(t, "confirmed", first.Status)
		require.Equal(t, 4, first.Nights)
		require.Equal(t, int64(4*5500), first.TotalPriceCents)

		// Overlap on the same cabin: 409 with a suggestion past the blocker.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createBody("small", "2025-09-03", "2025-09-06", "Benja Tuki"), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var conflict map[string]any
		httptest.DecodeResponseBody(t, w.Body, &conflict)
		require.Equal(t, "small", conflict["cabinId"])
		require.Equal(t, "2025-09-05", conflict["nextAvailableDate"])

		// A different cabin is unaffected.
		other := s.createReservation(token, createBody("large", "2025-09-03", "2025-09-06", "Benja Tuki"))
		require.Equal(t, "large", other.CabinID)

		// Cancelling the blocker frees the range.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+first.ID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		retry := s.createReservation(token, createBody("small", "2025-09-03", "2025-09-06", "Benja Tuki"))
		require.Equal(t, "small", retry.CabinID)
	})

	s.Run("same-day turnover is not a conflict", func() {
		t := s.T()
		token := s.adminToken()

		s.createReservation(token, createBody("medium-1", "2025-09-01", "2025-09-04", "Ana Pakarati"))
		arrival := s.createReservation(token, createBody("medium-1", "2025-09-04", "2025-09-07", "Benja Tuki"))
		require.Equal(t, "2025-09-04", arrival.CheckIn)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/turnovers?date=2025-09-04", nil, token)

		var turnovers []response.TurnoverResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &turnovers)
		require.Len(t, turnovers, 1)
		require.Equal(t, "medium-1", turnovers[0].CabinID)
		require.Equal(t, "Ana Pakarati", turnovers[0].DepartureGuest)
		require.Equal(t, "Benja Tuki", turnovers[0].ArrivalGuest)
	})

	s.Run("lifecycle: check-in, payment, check-out", func() {
		t := s.T()
		token := s.adminToken()

		created := s.createReservation(token, createBody("small", "2025-09-01", "2025-09-03", "Ana Pakarati"))
		base := reservationsURL + "/" + created.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/check-in", nil, token)
		var checkedIn response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &checkedIn)
		require.NotNil(t, checkedIn.CheckedInAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/payments",
			map[string]any{"amount_cents": created.TotalPriceCents}, token)
		var paid response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, "paid", paid.PaymentStatus)

		// Overpayment is a domain violation.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/payments",
			map[string]any{"amount_cents": 1}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/check-out", nil, token)
		var checkedOut response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &checkedOut)
		require.NotNil(t, checkedOut.CheckedOutAt)

		// Every transition left a notification behind.
		unread, err := dbtest.CountUnreadNotifications(s.DB)
		require.NoError(t, err)
		require.Equal(t, 4, unread)
	})

	s.Run("availability endpoint reflects bookings", func() {
		t := s.T()
		token := s.adminToken()

		s.createReservation(token, createBody("small", "2025-09-01", "2025-09-05", "Ana Pakarati"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			availabilityURL+"?checkIn=2025-09-02&checkOut=2025-09-04", nil, token)

		var all []response.CabinAvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
		require.Len(t, all, 4)
		require.False(t, all[0].Available, "small should be booked")
		require.True(t, all[3].Available, "large should be free")
	})

	s.Run("requests without a token are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
