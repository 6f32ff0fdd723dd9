package http

import (
	"github.com/gin-gonic/gin"

	"pomoflow/internal/middleware"
	"pomoflow/pkg/response"
)

// Parse godoc
// @Summary     Parse natural language task text
// @Description Extracts title, priority, duration, due date and recurrence from Portuguese task text.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Raw task text"
// @Success     200 {object} response.Resp{data=parsedTaskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/parse-task [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newParsedTaskResp(output.Parsed))
}

// Create godoc
// @Summary     Create a task
// @Description Persists a task; the due date is validated against the real calendar before storage.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, newest first, with optional filters.
// @Tags        Task
// @Produce     json
// @Param       completed query bool   false "Filter by completion state"
// @Param       category  query string false "Filter by category"
// @Success     200 {object} response.Resp{data=listResp}
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update; omitted fields are left untouched, an empty dueDate clears it.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "task.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task done. Completing a recurring task also returns the spawned next occurrence.
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp{data=completeResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already completed"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	done, next, err := h.uc.Complete(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "task.http.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCompleteResp(done, next))
}
