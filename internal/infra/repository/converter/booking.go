package converter

import (
	"cinemaplus/internal/domain/booking"
	"cinemaplus/internal/domain/movie"
	"cinemaplus/internal/infra/query"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/pkg/pgconv"
)

func BookingToDomain(row query.Booking) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	seat, err := booking.NewMoney(row.SeatAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s seat amount", row.ID)
	}
	food, err := booking.NewMoney(row.FoodAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s food amount", row.ID)
	}
	discount, err := booking.NewMoney(row.DiscountAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s discount amount", row.ID)
	}
	final, err := booking.NewMoney(row.FinalAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s final amount", row.ID)
	}

	return booking.ReconstructBooking(
		row.ID,
		booking.Code(row.Code),
		row.UserID,
		row.ShowtimeID,
		int(row.SeatCount),
		booking.Amounts{Seat: seat, Food: food, Discount: discount},
		final,
		status,
		pgconv.StringFromPgtype(row.Notes),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func MovieToDomain(row query.Movie) *movie.Movie {
	// An unknown stored status is treated as stale and rewritten on the next refresh.
	status, _ := movie.NewStatus(row.Status)
	return movie.ReconstructMovie(
		row.ID,
		row.Title,
		pgconv.DatePtrFromPgtype(row.ReleaseDate),
		int(row.DurationMin),
		status,
	)
}
