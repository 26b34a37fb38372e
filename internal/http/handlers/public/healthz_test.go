package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil)

	h := &Handler{}
	h.Healthz(c)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var body struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			Status    string `json:"status"`
			Timestamp string `json:"timestamp"`
		} `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if body.StatusCode != 0 || body.Data.Status != "ok" {
		t.Fatalf("unexpected body %s", recorder.Body.String())
	}
	if _, err := time.Parse(time.RFC3339, body.Data.Timestamp); err != nil {
		t.Fatalf("timestamp is not RFC3339: %v", err)
	}
}
