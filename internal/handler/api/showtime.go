package api

import (
	"net/http"

	resdto "cinemaplus/internal/handler/dto/response"
	"cinemaplus/internal/handler/httperr"
	"cinemaplus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShowtimeHandler struct {
	q queries.SeatQueries
}

func NewShowtimeHandler(q queries.SeatQueries) *ShowtimeHandler {
	return &ShowtimeHandler{q: q}
}

// @Summary Occupied seats
// @Description Seats held by confirmed bookings or by pending bookings inside their hold window
// @Tags showtimes
// @Produce json
// @Param id path string true "Showtime ID"
// @Success 200 {object} resdto.OccupiedSeatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/showtimes/{id}/occupied-seats [get]
func (h *ShowtimeHandler) OccupiedSeats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.OccupiedSeats(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithMapped(c, err, showtimeErrors...)
		return
	}
	c.JSON(http.StatusOK, resdto.OccupiedSeatsResponse{
		ShowtimeID: view.ShowtimeID,
		SeatIDs:    view.SeatIDs,
		AsOf:       view.AsOf,
	})
}
