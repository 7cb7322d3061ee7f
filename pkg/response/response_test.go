package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-timetable/pkg/response"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return resp
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.OK(c, map[string]string{"id": "task-1"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode(t, w)
	if resp.ErrorCode != 0 || resp.Message != response.MessageSuccess {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok || data["id"] != "task-1" {
		t.Errorf("unexpected data: %v", resp.Data)
	}
}

func TestError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, errors.New("title is required"))
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decode(t, w)
	if resp.ErrorCode != 1 || resp.Message != "title is required" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Data != nil {
		t.Errorf("expected no data, got %v", resp.Data)
	}
}

func TestInternalError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.InternalError(c, errors.New("record store not available"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	resp := decode(t, w)
	if resp.ErrorCode != response.InternalServerErrorCode {
		t.Errorf("unexpected error code: %d", resp.ErrorCode)
	}
	// The real error stays server-side; the body carries the generic message.
	if resp.Message != response.DefaultErrorMessage {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestTooManyRequests(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.TooManyRequests(c)
	})

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	resp := decode(t, w)
	if resp.ErrorCode != http.StatusTooManyRequests {
		t.Errorf("unexpected error code: %d", resp.ErrorCode)
	}
}
