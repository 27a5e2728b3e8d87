package api

import (
	"net/http"

	reqdto "cinemaplus/internal/handler/dto/request"
	resdto "cinemaplus/internal/handler/dto/response"
	"cinemaplus/internal/handler/httperr"
	"cinemaplus/internal/handler/middleware"
	"cinemaplus/internal/usecase/commands"
	"cinemaplus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List own bookings
// @Description Keyset-paginated bookings of the authenticated user, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor from next_cursor"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var cursor *queries.Cursor
	if req.Cursor != "" {
		cursor = &queries.Cursor{After: req.Cursor}
	}

	items, next, err := h.q.ListByUser(c.Request.Context(), userID, cursor, req.Limit)
	if err != nil {
		httperr.AbortWithMapped(c, err, bookingErrors...)
		return
	}

	res, err := resdto.FromBookingList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Description Booking detail with showtime, movie, room, theater and seats. Owner or admin only.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithMapped(c, err, bookingErrors...)
		return
	}

	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking and release its seats. Owner or admin only.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingTransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.CancelBooking(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithMapped(c, err, bookingErrors...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Confirm booking
// @Description Payment completion callback. Confirms a pending booking still inside its hold window.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingTransitionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	result, err := h.cmds.ConfirmBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithMapped(c, err, bookingErrors...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}
