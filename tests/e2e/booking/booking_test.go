//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"cinemaplus/internal/domain/user"
	"cinemaplus/internal/handler/dto/response"
	"cinemaplus/tests/common/authtest"
	"cinemaplus/tests/common/dbtest"
	"cinemaplus/tests/common/httptest"
	"cinemaplus/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/api/bookings"
	bookingURL       = "/api/bookings/%s"
	cancelURL        = "/api/bookings/%s/cancel"
	confirmURL       = "/api/bookings/%s/confirm"
	occupiedSeatsURL = "/api/showtimes/%s/occupied-seats"
	runJobURL        = "/api/admin/jobs/%s/run"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	venue      dbtest.Venue
	showtimeID uuid.UUID
}

func (s *BookingSuite) seedShowtime(t *testing.T, seats int) fixture {
	t.Helper()
	venue := dbtest.CreateVenue(t, s.DB, seats)
	movieID := dbtest.CreateMovie(t, s.DB, "Dune: Part Two", time.Now().AddDate(0, 0, -7), 166, "NOW_SHOWING")
	showtimeID := dbtest.CreateShowtime(t, s.DB, movieID, venue.RoomID, time.Now().Add(48*time.Hour).Truncate(time.Hour))
	return fixture{venue: venue, showtimeID: showtimeID}
}

// =============================================================================
// TestExpirationSweep - pending holds past the TTL are expired and release seats
// =============================================================================

func (s *BookingSuite) TestExpirationSweep() {
	s.Run("Normal case: overdue pending bookings expire and free their seats", func() {
		t := s.T()
		f := s.seedShowtime(t, 6)
		seats := f.venue.SeatIDs
		now := time.Now()
		userID := uuid.New()

		overdue := dbtest.CreateBooking(t, s.DB, userID, f.showtimeID, "PENDING", now.Add(-20*time.Minute), seats[0], seats[1])
		fresh := dbtest.CreateBooking(t, s.DB, userID, f.showtimeID, "PENDING", now.Add(-5*time.Minute), seats[2])
		confirmed := dbtest.CreateBooking(t, s.DB, userID, f.showtimeID, "CONFIRMED", now.Add(-2*time.Hour), seats[3])

		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(runJobURL, "booking-expiry"), nil, adminToken)

		var run response.JobRunResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &run)
		require.Equal(t, response.JobRunResponse{Job: "booking-expiry", Affected: 1}, run)

		require.Equal(t, "EXPIRED", dbtest.QueryString(t, s.DB, "SELECT status FROM bookings WHERE id = $1", overdue))
		require.Equal(t, "PENDING", dbtest.QueryString(t, s.DB, "SELECT status FROM bookings WHERE id = $1", fresh))
		require.Equal(t, "CONFIRMED", dbtest.QueryString(t, s.DB, "SELECT status FROM bookings WHERE id = $1", confirmed))
		require.Equal(t, 2, dbtest.QueryInt(t, s.DB,
			"SELECT count(*) FROM booking_seats WHERE booking_id = $1 AND released_at IS NOT NULL", overdue))
		require.Equal(t, 1, dbtest.QueryInt(t, s.DB,
			"SELECT count(*) FROM notification_jobs WHERE kind = 'booking.expired' AND status = 'queued'"))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(occupiedSeatsURL, f.showtimeID), nil, "")
		var occupied response.OccupiedSeatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &occupied)
		require.ElementsMatch(t, []uuid.UUID{seats[2], seats[3]}, occupied.SeatIDs)
	})

	s.Run("Normal case: a second sweep finds nothing to do", func() {
		t := s.T()
		f := s.seedShowtime(t, 2)
		dbtest.CreateBooking(t, s.DB, uuid.New(), f.showtimeID, "PENDING", time.Now().Add(-time.Hour), f.venue.SeatIDs[0])

		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)
		url := fmt.Sprintf(runJobURL, "booking-expiry")

		var first, second response.JobRunResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, adminToken), http.StatusOK, &first)
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, adminToken), http.StatusOK, &second)

		require.Equal(t, 1, first.Affected)
		require.Equal(t, 0, second.Affected)
	})

	s.Run("Normal case: lapsed holds are not reported as occupied before the sweep", func() {
		t := s.T()
		f := s.seedShowtime(t, 2)
		dbtest.CreateBooking(t, s.DB, uuid.New(), f.showtimeID, "PENDING", time.Now().Add(-time.Hour), f.venue.SeatIDs[0])

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(occupiedSeatsURL, f.showtimeID), nil, "")

		var occupied response.OccupiedSeatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &occupied)
		require.Empty(t, occupied.SeatIDs)
	})

	s.Run("Error case: unknown showtime", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(occupiedSeatsURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Showtime not found")
	})
}

// =============================================================================
// TestCancelBooking
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: owner cancels a pending booking", func() {
		t := s.T()
		f := s.seedShowtime(t, 3)
		userID := uuid.New()
		id := dbtest.CreateBooking(t, s.DB, userID, f.showtimeID, "PENDING", time.Now().Add(-time.Minute), f.venue.SeatIDs[0], f.venue.SeatIDs[1])

		token := s.jwt.GenerateToken(t, userID, user.RoleViewer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, id), nil, token)

		var res response.BookingTransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, response.BookingTransitionResponse{ID: id, Status: "CANCELLED", SeatsReleased: 2}, res)
		require.Equal(t, 1, dbtest.QueryInt(t, s.DB,
			"SELECT count(*) FROM notification_jobs WHERE kind = 'booking.cancelled'"))

		// Cancelled is terminal
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, id), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "does not allow")
	})

	s.Run("Normal case: admin cancels a confirmed booking of another user", func() {
		t := s.T()
		f := s.seedShowtime(t, 1)
		id := dbtest.CreateBooking(t, s.DB, uuid.New(), f.showtimeID, "CONFIRMED", time.Now().Add(-time.Hour), f.venue.SeatIDs[0])

		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, id), nil, token)

		var res response.BookingTransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "CANCELLED", res.Status)
		require.Equal(t, int64(1), res.SeatsReleased)
	})

	s.Run("Error case: another viewer cannot cancel", func() {
		t := s.T()
		f := s.seedShowtime(t, 1)
		id := dbtest.CreateBooking(t, s.DB, uuid.New(), f.showtimeID, "PENDING", time.Now(), f.venue.SeatIDs[0])

		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, id), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")
		require.Equal(t, "PENDING", dbtest.QueryString(t, s.DB, "SELECT status FROM bookings WHERE id = $1", id))
	})

	s.Run("Error case: unknown booking", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, uuid.New()), nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestConfirmBooking
// =============================================================================

func (s *BookingSuite) TestConfirmBooking() {
	s.Run("Normal case: operator confirms a pending booking inside the hold window", func() {
		t := s.T()
		f := s.seedShowtime(t, 1)
		id := dbtest.CreateBooking(t, s.DB, uuid.New(), f.showtimeID, "PENDING", time.Now().Add(-time.Minute), f.venue.SeatIDs[0])

		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleOperator)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, id), nil, token)

		var res response.BookingTransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "CONFIRMED", res.Status)
		require.Zero(t, res.SeatsReleased)
	})

	s.Run("Error case: hold already lapsed", func() {
		t := s.T()
		f := s.seedShowtime(t, 1)
		id := dbtest.CreateBooking(t, s.DB, uuid.New(), f.showtimeID, "PENDING", time.Now().Add(-time.Hour), f.venue.SeatIDs[0])

		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleOperator)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, id), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "hold has expired")
		require.Equal(t, "PENDING", dbtest.QueryString(t, s.DB, "SELECT status FROM bookings WHERE id = $1", id))
	})

	s.Run("Error case: viewers cannot confirm", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, uuid.New()), nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestReadBookings - detail and keyset pagination
// =============================================================================

func (s *BookingSuite) TestReadBookings() {
	s.Run("Normal case: pages through own bookings newest first", func() {
		t := s.T()
		f := s.seedShowtime(t, 4)
		userID := uuid.New()
		base := time.Now().Add(-time.Hour)

		oldest := dbtest.CreateBooking(t, s.DB, userID, f.showtimeID, "CONFIRMED", base, f.venue.SeatIDs[0])
		middle := dbtest.CreateBooking(t, s.DB, userID, f.showtimeID, "CONFIRMED", base.Add(time.Minute), f.venue.SeatIDs[1])
		newest := dbtest.CreateBooking(t, s.DB, userID, f.showtimeID, "CONFIRMED", base.Add(2*time.Minute), f.venue.SeatIDs[2])
		dbtest.CreateBooking(t, s.DB, uuid.New(), f.showtimeID, "CONFIRMED", base, f.venue.SeatIDs[3])

		token := s.jwt.GenerateToken(t, userID, user.RoleViewer)

		var page1 response.BookingListResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page1)
		require.Len(t, page1.Items, 2)
		require.Equal(t, []uuid.UUID{newest, middle}, []uuid.UUID{page1.Items[0].ID, page1.Items[1].ID})
		require.NotNil(t, page1.NextCursor)

		var page2 response.BookingListResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2&cursor="+*page1.NextCursor, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page2)
		require.Len(t, page2.Items, 1)
		require.Equal(t, oldest, page2.Items[0].ID)
		require.Nil(t, page2.NextCursor)
	})

	s.Run("Normal case: booking detail joins showtime, movie and seats", func() {
		t := s.T()
		f := s.seedShowtime(t, 2)
		userID := uuid.New()
		id := dbtest.CreateBooking(t, s.DB, userID, f.showtimeID, "CONFIRMED", time.Now().Add(-time.Hour), f.venue.SeatIDs...)

		token := s.jwt.GenerateToken(t, userID, user.RoleViewer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, id), nil, token)

		var actual response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)

		expected := &response.BookingResponse{
			ID:          id,
			UserID:      userID,
			ShowtimeID:  f.showtimeID,
			Status:      "CONFIRMED",
			SeatCount:   2,
			SeatAmount:  100_000,
			FinalAmount: 100_000,
			MovieTitle:  "Dune: Part Two",
			RoomName:    "Room 1",
			TheaterName: "CinemaPlus Downtown",
			Seats: []response.BookingSeatResponse{
				{SeatID: f.venue.SeatIDs[0], Label: "A1", SeatType: "STANDARD", Price: 50_000},
				{SeatID: f.venue.SeatIDs[1], Label: "A2", SeatType: "STANDARD", Price: 50_000},
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "Code", "MovieID", "ShowDate", "StartTime", "EndTime", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: access token from the identity cookie", func() {
		t := s.T()
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID, user.RoleViewer)
		cookies := []*http.Cookie{{Name: "access_token", Value: token}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, bookingsURL, nil, cookies, "")

		var page response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Empty(t, page.Items)
	})

	s.Run("Error case: malformed cursor", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?cursor=garbage", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("Error case: unauthenticated", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestShowtimeSchema - showtimes carry a base price and a bounded status
// =============================================================================

func (s *BookingSuite) TestShowtimeSchema() {
	s.Run("Normal case: new showtimes are scheduled", func() {
		t := s.T()
		f := s.seedShowtime(t, 1)

		require.Equal(t, "SCHEDULED", dbtest.QueryString(t, s.DB, "SELECT status FROM showtimes WHERE id = $1", f.showtimeID))
		require.Equal(t, 50000, dbtest.QueryInt(t, s.DB, "SELECT base_price FROM showtimes WHERE id = $1", f.showtimeID))
	})

	s.Run("Error case: unknown showtime status is rejected", func() {
		t := s.T()
		f := s.seedShowtime(t, 1)

		_, err := s.DB.Exec(t.Context(), "UPDATE showtimes SET status = 'POSTPONED' WHERE id = $1", f.showtimeID)
		require.Error(t, err)

		_, err = s.DB.Exec(t.Context(), "UPDATE showtimes SET status = 'CANCELLED' WHERE id = $1", f.showtimeID)
		require.NoError(t, err)
	})
}
