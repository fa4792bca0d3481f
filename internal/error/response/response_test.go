package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"telefono-http-service/internal/error/code"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewDerivesSuccessFromStatus(t *testing.T) {
	cases := map[int]bool{
		http.StatusOK:                  true,
		http.StatusCreated:             true,
		http.StatusNoContent:           true,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusInternalServerError: false,
	}
	for status, want := range cases {
		if got := New(status, "msg", nil).Success; got != want {
			t.Errorf("status %d: success = %v, want %v", status, got, want)
		}
	}
}

func TestFailWithMessageWritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FailWithMessage(c, code.ErrTelefonoNotFound, "gone", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("success should be false")
	}
	if resp.Message != "gone" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Code != code.ErrTelefonoNotFound {
		t.Errorf("code = %d", resp.Code)
	}
	if resp.Data.Status != http.StatusNotFound || resp.Data.Body != nil {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestNoContentKeepsEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusNoContent, "deleted", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	if !resp.Success {
		t.Error("success should be true")
	}
	if resp.Message != "deleted" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Data.Status != http.StatusNoContent || resp.Data.Body != nil {
		t.Errorf("data = %+v", resp.Data)
	}
}
