package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rromanowicz/task-list/internal/models"
)

func (h *Handler) CreateTaskList(c *gin.Context) {
	request := &models.TaskList{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	list, err := h.svc.CreateTaskList(request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (h *Handler) GetTaskListByID(c *gin.Context) {
	listId, err := parseId(c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	list, err := h.svc.GetTaskListByID(listId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetTaskListsByOwner(c *gin.Context) {
	lists, err := h.svc.GetTaskListsByOwner(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

func (h *Handler) DeleteTaskListByID(c *gin.Context) {
	listId, err := parseId(c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.svc.DeleteTaskListByID(listId); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ShareTaskList(c *gin.Context) {
	listId, err := parseId(c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.svc.ShareTaskList(listId, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) UnshareTaskList(c *gin.Context) {
	listId, err := parseId(c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.svc.UnshareTaskList(listId, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) UpdateTaskList(c *gin.Context) {
	listId, err := parseId(c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	request := &models.TaskList{}
	err = c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	list, err := h.svc.UpdateTaskList(listId, request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
