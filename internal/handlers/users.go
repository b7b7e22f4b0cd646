package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rromanowicz/task-list/internal/models"
)

func (h *Handler) CreateUser(c *gin.Context) {
	request := &models.User{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.svc.CreateUser(request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUserByID(c *gin.Context) {
	userId, err := parseId(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	user, err := h.svc.GetUserByID(userId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) GetUserByUsername(c *gin.Context) {
	user, err := h.svc.GetUserByUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUserByID(c *gin.Context) {
	userId, err := parseId(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.svc.DeleteUserByID(userId); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteUserByUsername(c *gin.Context) {
	if err := h.svc.DeleteUserByUsername(c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
