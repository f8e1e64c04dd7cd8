package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/media_consumer/internal/domain"
	"github.com/Gunvolt24/media_consumer/internal/ports/mocks"
	rest "github.com/Gunvolt24/media_consumer/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockMessageConsumer, *mocks.MockMediaReadService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	consumer := mocks.NewMockMessageConsumer(ctrl)
	svc := mocks.NewMockMediaReadService(ctrl)

	h := rest.NewHandler(consumer, svc, noopLogger{}, 0)
	return rest.NewRouter(h, "", ""), consumer, svc
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatus_ReportsConsumerState(t *testing.T) {
	r, consumer, _ := newTestRouter(t)

	consumer.EXPECT().Status().Return(domain.ConsumerStatus{
		State: "running", Accumulated: 12, Threshold: 430,
	})

	w := serve(r, http.MethodGet, "/status")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var got domain.ConsumerStatus
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.State != "running" || got.Accumulated != 12 || got.Threshold != 430 || got.Outcome != "" {
		t.Fatalf("unexpected status: %+v", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header must be set")
	}
}

func TestStatus_AfterCompletion(t *testing.T) {
	r, consumer, _ := newTestRouter(t)

	consumer.EXPECT().Status().Return(domain.ConsumerStatus{
		State: "terminated", Outcome: "completed", Threshold: 430, Flushed: 430,
	})

	w := serve(r, http.MethodGet, "/status")
	var got domain.ConsumerStatus
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Outcome != "completed" || got.Flushed != 430 {
		t.Fatalf("unexpected status: %+v", got)
	}
}

func TestListMediaByUser_OK_Default(t *testing.T) {
	r, _, svc := newTestRouter(t)

	ret := []domain.Media{{Title: "a", UserID: "u1"}, {Title: "b", UserID: "u1"}}
	svc.EXPECT().MediaByUser(gomock.Any(), "u1", 20, 0).Return(ret, nil)

	w := serve(r, http.MethodGet, "/user/u1/media")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []domain.Media
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "b" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListMediaByUser_OK_WithParams(t *testing.T) {
	r, _, svc := newTestRouter(t)

	svc.EXPECT().MediaByUser(gomock.Any(), "u9", 100, 7).Return([]domain.Media{{Title: "x"}}, nil)

	// limit выше максимума обрезается до 100
	w := serve(r, http.MethodGet, "/user/u9/media?limit=500&offset=7")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListMediaByUser_ServiceError(t *testing.T) {
	r, _, svc := newTestRouter(t)

	svc.EXPECT().MediaByUser(gomock.Any(), "u-err", 20, 0).Return(nil, errors.New("service error"))

	w := serve(r, http.MethodGet, "/user/u-err/media")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMediaCount(t *testing.T) {
	r, _, svc := newTestRouter(t)

	svc.EXPECT().MediaCount(gomock.Any()).Return(int64(430), nil)

	w := serve(r, http.MethodGet, "/media/count")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Count != 430 {
		t.Fatalf("want count 430, got %d", got.Count)
	}
}

func TestMediaCount_Error(t *testing.T) {
	r, _, svc := newTestRouter(t)

	svc.EXPECT().MediaCount(gomock.Any()).Return(int64(0), errors.New("db down"))

	if w := serve(r, http.MethodGet, "/media/count"); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestNoRoute_404(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if w := serve(r, http.MethodGet, "/no-such-route"); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := serve(r, http.MethodPost, "/status")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("want Allow: GET, got %q", allow)
	}
}

func TestPing_200(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if w := serve(r, http.MethodGet, "/ping"); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
