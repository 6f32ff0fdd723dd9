package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "pomoflow/pkg/errors"
	"pomoflow/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Error defaults to 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("test err"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.ErrorCode != 1 {
			t.Errorf("expected ErrorCode 1, got %d", resp.ErrorCode)
		}
		if resp.Message != "test err" {
			t.Errorf("expected message %q, got %q", "test err", resp.Message)
		}
	})

	t.Run("Error honors HTTPError status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "task not found"))

		if w.Code != http.StatusNotFound {
			t.Errorf("expected %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}

func TestDateTimeMarshal(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	in := time.Date(2025, time.June, 11, 14, 0, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(in))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	want := `"2025-06-11T17:00:00.000Z"`
	if string(b) != want {
		t.Errorf("DateTime marshal = %s, want %s", b, want)
	}
}
