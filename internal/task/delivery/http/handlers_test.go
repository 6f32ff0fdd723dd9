package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pomoflow/internal/middleware"
	taskhttp "pomoflow/internal/task/delivery/http"
	"pomoflow/internal/task/repository/memory"
	"pomoflow/internal/task/usecase"
	"pomoflow/pkg/response"
	"pomoflow/pkg/taskparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	parser, err := taskparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := usecase.New(l, parser, memory.New(l), nil, "UTC")
	mw := middleware.New(l, "ana@example.com", 6000)

	r := gin.New()
	taskhttp.RegisterRoutes(r.Group("/api/v1"), taskhttp.New(l, uc), mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %s %s response: %v (body %s)", method, path, err, w.Body.String())
	}
	return w, resp
}

func TestParseTaskEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/parse-task",
		`{"text":"Reunião urgente amanhã às 10h"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data payload: %v", resp.Data)
	}
	if data["priority"] != "high" {
		t.Errorf("priority = %v, want high", data["priority"])
	}
	if data["isRecurring"] != false {
		t.Errorf("isRecurring = %v, want false", data["isRecurring"])
	}

	due, ok := data["dueDate"].(string)
	if !ok {
		t.Fatalf("dueDate = %v, want ISO string", data["dueDate"])
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000Z", due); err != nil {
		t.Errorf("dueDate %q is not millisecond-UTC ISO: %v", due, err)
	}
	if !strings.Contains(due, "T10:00:00") {
		t.Errorf("dueDate = %q, want 10:00", due)
	}
}

func TestParseTaskEmptyText(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/parse-task", `{"text":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(resp.Message, "obrigatório") {
		t.Errorf("message = %q, want Portuguese required-field error", resp.Message)
	}
}

func TestCreateRejectsImpossibleDate(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Dentista","dueDate":"2025-11-31T09:00:00.000Z"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(resp.Message, "não existe no calendário") {
		t.Errorf("message = %q, want calendar error", resp.Message)
	}
}

func TestTaskLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Academia","dueDate":"2025-06-11T09:00:00.000Z","isRecurring":true,"recurrencePattern":"daily"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	created := resp.Data.(map[string]interface{})
	id := created["id"].(string)

	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/tasks/"+id+"/complete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d, body %s", w.Code, w.Body.String())
	}
	data := resp.Data.(map[string]interface{})
	next, ok := data["nextTask"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected spawned nextTask, got %v", data)
	}
	if next["parentTaskId"] != id {
		t.Errorf("parentTaskId = %v, want %s", next["parentTaskId"], id)
	}
	if !strings.Contains(next["dueDate"].(string), "2025-06-12T09:00:00") {
		t.Errorf("next dueDate = %v, want advanced one day", next["dueDate"])
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/tasks?completed=false", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	list := resp.Data.(map[string]interface{})
	if list["count"].(float64) != 1 {
		t.Errorf("pending count = %v, want 1", list["count"])
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/tasks/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/tasks/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}
