package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rromanowicz/task-list/internal/auth"
	"github.com/rromanowicz/task-list/internal/middleware"
)

// Router wires the API surface. The root probe, the health probe and user
// registration are open; everything else passes the access gate.
func Router(h *Handler, gate *auth.Gate) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.POST("/api/user/create", h.CreateUser)

	api := router.Group("/api", middleware.Auth(gate))

	api.GET("/user/id/:userId", h.GetUserByID)
	api.GET("/user/id/:userId/delete", h.DeleteUserByID)
	api.GET("/user/name/:username", h.GetUserByUsername)
	api.GET("/user/name/:username/delete", h.DeleteUserByUsername)

	api.POST("/taskList/create", h.CreateTaskList)
	api.GET("/taskList/get/id/:listId", h.GetTaskListByID)
	api.GET("/taskList/get/user/:username", h.GetTaskListsByOwner)
	api.GET("/taskList/:listId/delete", h.DeleteTaskListByID)
	api.GET("/taskList/:listId/share/:username", h.ShareTaskList)
	api.GET("/taskList/:listId/unShare/:username", h.UnshareTaskList)
	api.POST("/taskList/:listId/update", h.UpdateTaskList)

	api.POST("/taskList/:listId/task/add", h.AddTask)
	api.GET("/taskList/:listId/task/getAll", h.GetAllTasks)
	api.GET("/taskList/:listId/task/:taskId/delete", h.DeleteTask)
	api.GET("/taskList/:listId/task/:taskId/completed/:completed", h.ToggleCompleted)
	api.POST("/taskList/:listId/task/:taskId/update", h.UpdateTask)

	return router
}
