package api

import (
	"net/http"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	resdto "manuara-reservas/internal/handler/dto/response"
	"manuara-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Check availability
// @Description One cabin when ?cabin is given, all cabins otherwise
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param cabin query string false "Cabin identifier"
// @Success 200 {object} resdto.CabinCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	stay, err := reservation.ParseStayRange(c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if v := c.Query("cabin"); v != "" {
		cabinID, err := cabin.ParseID(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
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
		c.JSON(http.StatusOK, resdto.FromCabinCheck(check))
		return
	}

	results, err := h.availability.CheckAllCabins(c.Request.Context(), stay)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCabinAvailabilities(results))
}
