package httperr

import (
	"net/http"

	"cinemaplus/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Mapping pairs a sentinel error with the response it produces.
type Mapping struct {
	Target  error
	Status  int
	Message string
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithMapped responds with the first mapping whose target matches err, or 500.
func AbortWithMapped(c *gin.Context, err error, mappings ...Mapping) {
	for _, m := range mappings {
		if errs.Is(err, m.Target) {
			AbortWithError(c, m.Status, err, m.Message, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
