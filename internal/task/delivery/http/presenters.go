package http

import (
	"pomoflow/internal/model"
	"pomoflow/internal/task"
	"pomoflow/pkg/response"
	"pomoflow/pkg/taskparse"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{Text: r.Text}
}

type createReq struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Priority          string   `json:"priority"`
	EstimatedTime     *int     `json:"estimatedTime"`
	DueDate           string   `json:"dueDate"`
	Category          string   `json:"category"`
	Tags              []string `json:"tags"`
	IsRecurring       bool     `json:"isRecurring"`
	RecurrencePattern string   `json:"recurrencePattern"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:             r.Title,
		Description:       r.Description,
		Priority:          r.Priority,
		EstimatedMinutes:  r.EstimatedTime,
		DueDate:           r.DueDate,
		Category:          r.Category,
		Tags:              r.Tags,
		IsRecurring:       r.IsRecurring,
		RecurrencePattern: r.RecurrencePattern,
	}
}

type updateReq struct {
	ID                string    `json:"-"` // populated from URI param
	Title             *string   `json:"title"`
	Description       *string   `json:"description"`
	Priority          *string   `json:"priority"`
	EstimatedTime     *int      `json:"estimatedTime"`
	DueDate           *string   `json:"dueDate"`
	Completed         *bool     `json:"completed"`
	Category          *string   `json:"category"`
	Tags              []string  `json:"tags"`
	IsRecurring       *bool     `json:"isRecurring"`
	RecurrencePattern *string   `json:"recurrencePattern"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Priority:          r.Priority,
		EstimatedMinutes:  r.EstimatedTime,
		DueDate:           r.DueDate,
		Completed:         r.Completed,
		Category:          r.Category,
		Tags:              r.Tags,
		IsRecurring:       r.IsRecurring,
		RecurrencePattern: r.RecurrencePattern,
	}
}

type listReq struct {
	Completed *bool  `form:"completed"`
	Category  string `form:"category"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Completed: r.Completed,
		Category:  r.Category,
	}
}

// --- Response DTOs ---

// parsedTaskResp mirrors the extraction result. The wire contract is
// camelCase with dueDate always present, null when nothing was extracted.
type parsedTaskResp struct {
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	DueDate           *response.DateTime `json:"dueDate"`
	Priority          string             `json:"priority"`
	EstimatedTime     *int               `json:"estimatedTime,omitempty"`
	IsRecurring       bool               `json:"isRecurring"`
	RecurrencePattern string             `json:"recurrencePattern,omitempty"`
}

func newParsedTaskResp(p taskparse.ParsedTask) parsedTaskResp {
	resp := parsedTaskResp{
		Title:         p.Title,
		Description:   p.Description,
		Priority:      string(p.Priority),
		EstimatedTime: p.EstimatedMinutes,
		IsRecurring:   p.IsRecurring,
	}
	if p.DueDate != nil {
		d := response.DateTime(*p.DueDate)
		resp.DueDate = &d
	}
	if p.RecurrencePattern != nil {
		resp.RecurrencePattern = string(*p.RecurrencePattern)
	}
	return resp
}

type taskResp struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description,omitempty"`
	Priority          string             `json:"priority"`
	EstimatedTime     *int               `json:"estimatedTime,omitempty"`
	DueDate           *response.DateTime `json:"dueDate"`
	Completed         bool               `json:"completed"`
	Category          string             `json:"category,omitempty"`
	Tags              []string           `json:"tags,omitempty"`
	IsRecurring       bool               `json:"isRecurring"`
	RecurrencePattern string             `json:"recurrencePattern,omitempty"`
	ParentTaskID      string             `json:"parentTaskId,omitempty"`
	CreatedAt         response.DateTime  `json:"createdAt"`
	UpdatedAt         response.DateTime  `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      string(t.Priority),
		EstimatedTime: t.EstimatedMinutes,
		Completed:     t.Completed,
		Category:      t.Category,
		Tags:          t.Tags,
		IsRecurring:   t.IsRecurring,
		ParentTaskID:  t.ParentTaskID,
		CreatedAt:     response.DateTime(t.CreatedAt),
		UpdatedAt:     response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		d := response.DateTime(*t.DueDate)
		resp.DueDate = &d
	}
	if t.RecurrencePattern != nil {
		resp.RecurrencePattern = string(*t.RecurrencePattern)
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{Tasks: tasks, Count: out.Count}
}

// completeResp reports the completed task and, for recurring tasks, the
// freshly spawned next occurrence.
type completeResp struct {
	Task     taskResp  `json:"task"`
	NextTask *taskResp `json:"nextTask,omitempty"`
}

func newCompleteResp(done model.Task, next *model.Task) completeResp {
	resp := completeResp{Task: newTaskResp(done)}
	if next != nil {
		n := newTaskResp(*next)
		resp.NextTask = &n
	}
	return resp
}
