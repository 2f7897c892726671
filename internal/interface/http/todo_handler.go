package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/application"
	"github.com/yudhapratama/portfolio-api/pkg/response"
	"github.com/yudhapratama/portfolio-api/pkg/validation"
)

// TodoHandler serves the visitor todo list plus the admin reminder sweep.
type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

// List GET /api/todos
func (h *TodoHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, "todos", nil)
}

type addTodoRequest struct {
	UserEmail   string `json:"user_email" binding:"required,email"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,priority"`
	DueDate     string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// Add POST /api/todos
func (h *TodoHandler) Add(c *gin.Context) {
	var req addTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Add(c.Request.Context(), application.AddTodoInput{
		UserEmail:   req.UserEmail,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "todo added", nil)
}

// Toggle PATCH /api/todos/:id/toggle
func (h *TodoHandler) Toggle(c *gin.Context) {
	t, err := h.Svc.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "todo toggled", nil)
}

// Delete DELETE /api/todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "todo deleted", nil)
}

type reminderSweepRequest struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ReminderSweep POST /api/admin/todos/reminder-sweep
// Enqueues one reminder email job per incomplete todo due on the given day
// (default: today). Delivery happens in the reminder worker.
func (h *TodoHandler) ReminderSweep(c *gin.Context) {
	var req reminderSweepRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	day := time.Now().UTC()
	if req.Date != "" {
		day, _ = time.Parse("2006-01-02", req.Date)
	}
	n, err := h.Svc.SweepDueReminders(c.Request.Context(), day)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enqueued": n}, "reminder sweep complete", nil)
}
