package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrilens/nutrilens/backend/config"
	"github.com/nutrilens/nutrilens/backend/internal/service"
)

// countingUpstream is an httptest-backed Gemini mock that counts calls.
type countingUpstream struct {
	server *httptest.Server
	calls  atomic.Int64
}

func newCountingUpstream(t *testing.T, handler http.HandlerFunc) *countingUpstream {
	t.Helper()
	u := &countingUpstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *countingUpstream) callCount() int64 {
	return u.calls.Load()
}

func newTestGeminiService(upstreamURL string) *service.GeminiService {
	return service.NewGeminiService(&config.Config{
		GeminiAPIKey:     "test-key",
		GeminiAPIURL:     upstreamURL,
		GeminiModel:      "gemini-test",
		RetryMaxAttempts: 3,
		RetryBaseDelay:   time.Millisecond,
	})
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}
