//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"cinemaplus/internal/domain/booking"
	"cinemaplus/internal/domain/user"
	"cinemaplus/internal/handler/api"
	resdto "cinemaplus/internal/handler/dto/response"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/internal/usecase/commands"
	"cinemaplus/internal/usecase/queries"
	"cinemaplus/internal/usecase/shared"
	"cinemaplus/tests/common/builder"
	"cinemaplus/tests/common/httptest"
	commandsmock "cinemaplus/tests/mock/commands"
	queriesmock "cinemaplus/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleViewer)
		c.Next()
	}

	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.Confirm)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().BuildListItem(),
	}

	s.Run("success: first page with next cursor", func() {
		next := &queries.Cursor{After: "djE6MTIzLWFiYw"}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, nil, 0).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal(items[0].ID, response.Items[0].ID)
		s.Require().NotNil(response.NextCursor)
		s.Equal(next.After, *response.NextCursor)
	})

	s.Run("success: cursor and limit are forwarded", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=abc&limit=5", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Items)
		s.Nil(response.NextCursor)
	})

	s.Run("error: 400 Bad Request for negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=-1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for malformed cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=not-a-cursor", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		actor := shared.Actor{UserID: s.userID, Role: user.RoleViewer}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actor, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Code, response.Code)
		s.Equal(view.ShowDate.Format("2006-01-02"), response.ShowDate)
		s.Len(response.Seats, len(view.Seats))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				queriesError:   errs.Wrap(errs.ErrBookingNotFound, "find booking"),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "booking of another user",
				queriesError:   errs.ErrBookingForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns the new status and released seats", func() {
		actor := shared.Actor{UserID: s.userID, Role: user.RoleViewer}
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, actor).
			Return(&commands.BookingResult{ID: bookingID, Status: booking.StatusCancelled, SeatsReleased: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingTransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("CANCELLED", response.Status)
		s.Equal(int64(2), response.SeatsReleased)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", commandsError: errs.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "not owner", commandsError: errs.ErrBookingForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "Forbidden"},
			{name: "already expired", commandsError: errs.Wrap(errs.ErrBookingStateChanged, "cancel"), expectedStatus: http.StatusConflict, expectedMsg: "does not allow"},
			{name: "unexpected", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirm() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/confirm"

	s.Run("success: returns CONFIRMED", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID).
			Return(&commands.BookingResult{ID: bookingID, Status: booking.StatusConfirmed}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingTransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CONFIRMED", response.Status)
		s.Zero(response.SeatsReleased)
	})

	s.Run("error: 409 Conflict when hold has expired", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID).
			Return(nil, errs.ErrBookingHoldExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "hold has expired")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/nope/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
