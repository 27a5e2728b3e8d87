//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"cinemaplus/internal/handler/api"
	resdto "cinemaplus/internal/handler/dto/response"
	"cinemaplus/internal/pkg/errs"
	"cinemaplus/tests/common/httptest"
	apimock "cinemaplus/tests/mock/api"
	commandsmock "cinemaplus/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockMovies *commandsmock.MockMovieStatusCommands
	mockJobs   *apimock.MockJobRunner
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockMovies = commandsmock.NewMockMovieStatusCommands(s.mockCtrl)
	s.mockJobs = apimock.NewMockJobRunner(s.mockCtrl)
	h := api.NewAdminHandler(s.mockMovies, s.mockJobs)

	s.router.POST("/admin/movies/status/refresh", h.RefreshMovieStatuses)
	s.router.POST("/admin/jobs/:name/run", h.RunJob)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestRefreshMovieStatuses() {
	url := "/admin/movies/status/refresh"

	s.Run("success: returns updated count", func() {
		s.mockMovies.EXPECT().ForceUpdateMovieStatuses(gomock.Any()).Return(12, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.MovieRefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(12, response.Updated)
	})

	s.Run("success: refresh survives a disconnected caller", func() {
		s.mockMovies.EXPECT().ForceUpdateMovieStatuses(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (int, error) {
				s.NoError(ctx.Err())
				return 3, nil
			}).Times(1)

		rec := s.serveCancelled(http.MethodPost, url)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 500 when refresh fails", func() {
		s.mockMovies.EXPECT().ForceUpdateMovieStatuses(gomock.Any()).Return(0, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "refresh failed")
	})
}

func (s *AdminHandlerTestSuite) TestRunJob() {
	s.Run("success: returns job name and affected count", func() {
		s.mockJobs.EXPECT().RunNow(gomock.Any(), "booking-expiry").Return(4, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/jobs/booking-expiry/run", nil, "")

		var response resdto.JobRunResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("booking-expiry", response.Job)
		s.Equal(4, response.Affected)
	})

	s.Run("success: job keeps running after the caller disconnects", func() {
		s.mockJobs.EXPECT().RunNow(gomock.Any(), "movie-status").
			DoAndReturn(func(ctx context.Context, _ string) (int, error) {
				s.NoError(ctx.Err())
				return 1, nil
			}).Times(1)

		rec := s.serveCancelled(http.MethodPost, "/admin/jobs/movie-status/run")

		var response resdto.JobRunResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Affected)
	})

	s.Run("error: maps scheduler errors to proper statuses", func() {
		testCases := []struct {
			name           string
			runErr         error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown job", runErr: errs.Wrapf(errs.ErrJobNotFound, "job %s", "x"), expectedStatus: http.StatusNotFound, expectedMsg: "Job not found"},
			{name: "already running", runErr: errs.Wrap(errs.ErrJobAlreadyRunning, "job x"), expectedStatus: http.StatusConflict, expectedMsg: "already running"},
			{name: "job failed", runErr: errors.New("db down"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockJobs.EXPECT().RunNow(gomock.Any(), "x").Return(0, tc.runErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/jobs/x/run", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// serveCancelled sends a request whose context is already cancelled, as if the client hung up.
func (s *AdminHandlerTestSuite) serveCancelled(method, url string) *nethttptest.ResponseRecorder {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := nethttptest.NewRequest(method, url, nil).WithContext(ctx)
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
