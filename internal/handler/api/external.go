package api

import (
	"net/http"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	resdto "manuara-reservas/internal/handler/dto/response"
	"manuara-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ExternalHandler serves the read-only availability endpoint for the
// integration partner. It speaks external short codes, never internal
// cabin identifiers, and it never mutates state.
type ExternalHandler struct {
	availability queries.AvailabilityQueries
}

func NewExternalHandler(availability queries.AvailabilityQueries) *ExternalHandler {
	return &ExternalHandler{availability: availability}
}

// @Summary External availability check
// @Description Whether a cabin type is free for a date range
// @Tags external
// @Produce json
// @Param X-Api-Key header string true "Shared secret"
// @Param cabinType query string true "External cabin code"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ExternalAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /external/availability [get]
func (h *ExternalHandler) GetAvailability(c *gin.Context) {
	cabinType := c.Query("cabinType")
	cabinID, err := cabin.FromExternalCode(cabinType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown cabinType",
		})
		return
	}

	stay, err := reservation.ParseStayRange(c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid checkIn/checkOut",
		})
		return
	}

	check, err := h.availability.CheckCabin(c.Request.Context(), cabinID, stay)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := resdto.ExternalAvailabilityResponse{
		Available: check.Available,
		CabinType: cabinType,
		CheckIn:   stay.CheckIn().String(),
		CheckOut:  stay.CheckOut().String(),
	}
	if check.NextAvailableDate != nil {
		s := check.NextAvailableDate.String()
		resp.NextAvailableDate = &s
	}

	c.JSON(http.StatusOK, resp)
}
