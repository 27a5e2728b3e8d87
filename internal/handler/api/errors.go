package api

import (
	"net/http"

	"cinemaplus/internal/handler/httperr"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/queries"
)

var bookingErrors = []httperr.Mapping{
	{Target: errs.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"},
	{Target: errs.ErrBookingForbidden, Status: http.StatusForbidden, Message: "Forbidden"},
	{Target: errs.ErrBookingHoldExpired, Status: http.StatusConflict, Message: "Booking hold has expired"},
	{Target: errs.ErrBookingStateChanged, Status: http.StatusConflict, Message: "Booking status does not allow this operation"},
	{Target: queries.ErrInvalidCursor, Status: http.StatusBadRequest, Message: "Invalid cursor"},
}

var showtimeErrors = []httperr.Mapping{
	{Target: errs.ErrShowtimeNotFound, Status: http.StatusNotFound, Message: "Showtime not found"},
}

var jobErrors = []httperr.Mapping{
	{Target: errs.ErrJobNotFound, Status: http.StatusNotFound, Message: "Job not found"},
	{Target: errs.ErrJobAlreadyRunning, Status: http.StatusConflict, Message: "Job is already running"},
}
