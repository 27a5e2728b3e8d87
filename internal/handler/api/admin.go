package api

import (
	"context"
	"net/http"

	resdto "cinemaplus/internal/handler/dto/response"
	"cinemaplus/internal/handler/httperr"
	"cinemaplus/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/api/admin.go -package=apimock

// JobRunner is satisfied by *job.Scheduler.
type JobRunner interface {
	RunNow(ctx context.Context, name string) (int, error)
}

type AdminHandler struct {
	movies commands.MovieStatusCommands
	jobs   JobRunner
}

func NewAdminHandler(movies commands.MovieStatusCommands, jobs JobRunner) *AdminHandler {
	return &AdminHandler{movies: movies, jobs: jobs}
}

// @Summary Force movie status refresh
// @Description Recompute and rewrite the status of every movie
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MovieRefreshResponse
// @Failure 403 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/admin/movies/status/refresh [post]
func (h *AdminHandler) RefreshMovieStatuses(c *gin.Context) {
	// Sweeps run to completion even if the caller disconnects.
	n, err := h.movies.ForceUpdateMovieStatuses(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Movie status refresh failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MovieRefreshResponse{Updated: n})
}

// @Summary Run job now
// @Description Run a registered job once, synchronously
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param name path string true "Job name"
// @Success 200 {object} resdto.JobRunResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/jobs/{name}/run [post]
func (h *AdminHandler) RunJob(c *gin.Context) {
	name := c.Param("name")

	n, err := h.jobs.RunNow(context.WithoutCancel(c.Request.Context()), name)
	if err != nil {
		httperr.AbortWithMapped(c, err, jobErrors...)
		return
	}
	c.JSON(http.StatusOK, resdto.JobRunResponse{Job: name, Affected: n})
}
