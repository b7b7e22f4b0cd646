package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rromanowicz/task-list/internal/models"
	"github.com/rromanowicz/task-list/internal/service"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func parseId(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// respondError maps an operation outcome to a status code. The not-found
// message keeps the which-reference-was-missing distinction from share
// and unshare.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusTeapot, "I'm a teapot.")
}
