package api

import (
	"net/http"

	"manuara-reservas/internal/domain/reservation"
	resdto "manuara-reservas/internal/handler/dto/response"
	"manuara-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analytics queries.AnalyticsQueries
}

func NewAnalyticsHandler(analytics queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// @Summary Occupancy per cabin
// @Description Booked nights and occupancy rate over a window
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD, exclusive)"
// @Success 200 {array} resdto.CabinOccupancyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /analytics/occupancy [get]
func (h *AnalyticsHandler) Occupancy(c *gin.Context) {
	window, err := reservation.ParseStayRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	results, err := h.analytics.Occupancy(c.Request.Context(), window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCabinOccupancies(results))
}
